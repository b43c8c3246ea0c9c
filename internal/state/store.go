package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/repository"
)

// ErrUnknownKey is returned when saving a slice key the store does not own.
var ErrUnknownKey = errors.New("unknown slice key")

// Store encodes overlays to and from the slice repository, one JSON value
// per key.
type Store struct {
	repo   repository.SliceRepo
	logger *slog.Logger
}

// NewStore creates a Store. A nil logger discards load warnings.
func NewStore(repo repository.SliceRepo, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{repo: repo, logger: logger}
}

// LoadAll reads every slice independently. A slice that is missing,
// unreadable or corrupt comes back as its empty default; the other slices
// are unaffected. Problems are logged as warnings, never returned.
func (st *Store) LoadAll(ctx context.Context) Overlays {
	o := NewOverlays()
	for _, key := range Keys {
		raw, ok, err := st.repo.Load(ctx, key)
		if err != nil {
			st.logger.WarnContext(ctx, "slice_load_failed", "key", key, "error", err.Error())
			continue
		}
		if !ok {
			continue
		}
		if err := decodeInto(&o, key, raw); err != nil {
			st.logger.WarnContext(ctx, "slice_corrupt", "key", key, "error", err.Error())
		}
	}
	return o
}

// SaveSlice rewrites the whole value of one key from o.
func (st *Store) SaveSlice(ctx context.Context, key string, o Overlays) error {
	raw, err := encode(key, o)
	if err != nil {
		return err
	}
	if err := st.repo.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Inventory lists the stored slices this store owns, in key order.
func (st *Store) Inventory(ctx context.Context) ([]repository.SliceInfo, error) {
	all, err := st.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing slices: %w", err)
	}
	byKey := make(map[string]repository.SliceInfo, len(all))
	for _, info := range all {
		byKey[info.Key] = info
	}
	out := make([]repository.SliceInfo, 0, len(Keys))
	for _, key := range Keys {
		if info, ok := byKey[key]; ok {
			out = append(out, info)
		}
	}
	return out, nil
}

// Reset deletes every slice this store owns. Keys never written are skipped.
func (st *Store) Reset(ctx context.Context) error {
	n, err := st.repo.DeleteKeys(ctx, Keys)
	if err != nil {
		return fmt.Errorf("resetting saved data: %w", err)
	}
	st.logger.InfoContext(ctx, "slices_reset", "deleted", n)
	return nil
}

func encode(key string, o Overlays) ([]byte, error) {
	o = o.clone()
	var v any
	switch key {
	case KeyFollowed:
		v = nonNil(o.Followed)
	case KeyMonitored:
		v = nonNil(o.Monitored)
	case KeyProgress:
		v = o.Progress
	case KeyNotes:
		v = o.Notes
	case KeyCustom:
		if o.Custom == nil {
			o.Custom = []domain.School{}
		}
		v = o.Custom
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", key, err)
	}
	return raw, nil
}

// decodeInto replaces one field of o. On error o keeps its empty default.
func decodeInto(o *Overlays, key string, raw []byte) error {
	switch key {
	case KeyFollowed:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return err
		}
		o.Followed = dedupe(ids)
	case KeyMonitored:
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return err
		}
		o.Monitored = dedupe(ids)
	case KeyProgress:
		var m map[string]domain.ProgressStatus
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		for id, st := range m {
			if st.IsValid() {
				o.Progress[id] = st
			}
		}
	case KeyNotes:
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		for id, text := range m {
			o.Notes[id] = TruncateNote(text)
		}
	case KeyCustom:
		var schools []domain.School
		if err := json.Unmarshal(raw, &schools); err != nil {
			return err
		}
		for _, s := range schools {
			if s.ID != "" {
				o.Custom = append(o.Custom, s)
			}
		}
	}
	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
