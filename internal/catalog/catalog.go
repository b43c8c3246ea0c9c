// Package catalog holds the school directory: the built-in records plus any
// custom records the user has added.
package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/hknav/internal/domain"
)

// ErrUnknownSchool is returned when an id matches no catalog entry.
var ErrUnknownSchool = errors.New("unknown school")

// ErrDuplicateID is returned when a custom record reuses an existing id.
var ErrDuplicateID = errors.New("duplicate school id")

// Base returns a fresh copy of the built-in catalog in ranking order.
func Base() []domain.School {
	out := append(named(), generated()...)
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out
}

// Catalog is base ∪ custom in insertion order. Base entries come first and
// are never modified; custom entries are append-only.
type Catalog struct {
	schools []domain.School
	index   map[string]int
	custom  int
}

// New builds a catalog from base followed by custom. Custom records whose id
// collides with an earlier entry are skipped.
func New(base, custom []domain.School) *Catalog {
	c := &Catalog{index: make(map[string]int, len(base)+len(custom))}
	for _, s := range base {
		c.add(s)
	}
	for _, s := range custom {
		if c.add(s) {
			c.custom++
		}
	}
	return c
}

// Default returns the built-in catalog with the given custom records.
func Default(custom []domain.School) *Catalog {
	return New(Base(), custom)
}

func (c *Catalog) add(s domain.School) bool {
	if _, ok := c.index[s.ID]; ok {
		return false
	}
	c.index[s.ID] = len(c.schools)
	c.schools = append(c.schools, s.Clone())
	return true
}

// All returns the catalog entries in catalog order. The slice is a copy.
func (c *Catalog) All() []domain.School {
	out := make([]domain.School, len(c.schools))
	copy(out, c.schools)
	return out
}

// Len returns the total number of entries.
func (c *Catalog) Len() int { return len(c.schools) }

// CustomCount returns the number of user-added entries.
func (c *Catalog) CustomCount() int { return c.custom }

// Get looks up a school by id.
func (c *Catalog) Get(id string) (domain.School, error) {
	i, ok := c.index[id]
	if !ok {
		return domain.School{}, fmt.Errorf("%w: %s", ErrUnknownSchool, id)
	}
	return c.schools[i], nil
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Lookup resolves several ids, keeping the given order and dropping ids
// that no longer resolve.
func (c *Catalog) Lookup(ids []string) []domain.School {
	out := make([]domain.School, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.index[id]; ok {
			out = append(out, c.schools[i])
		}
	}
	return out
}

// NextRanking is the ranking assigned to the next custom record.
func (c *Catalog) NextRanking() int { return len(c.schools) + 1 }

// Append adds a custom record at the end of the catalog.
func (c *Catalog) Append(s domain.School) error {
	if !c.add(s) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
	}
	c.custom++
	return nil
}

// Custom returns only the user-added entries, in insertion order.
func (c *Catalog) Custom() []domain.School {
	return c.All()[len(c.schools)-c.custom:]
}
