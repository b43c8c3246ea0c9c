// Package state holds the user-side overlays on top of the catalog and the
// transitions that change them. Transitions are pure: each takes a State and
// returns the next State plus an Effect naming which persisted slices need
// to be rewritten.
package state

import (
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
)

// Persisted slice keys.
const (
	KeyFollowed  = "hk_followed_schools"
	KeyMonitored = "hk_monitored_schools"
	KeyProgress  = "hk_progress"
	KeyNotes     = "hk_notes"
	KeyCustom    = "hk_custom_schools"
)

// Keys lists every persisted slice in load order.
var Keys = []string{KeyFollowed, KeyMonitored, KeyProgress, KeyNotes, KeyCustom}

const (
	// MaxCompared caps the comparison set.
	MaxCompared = 3
	// MaxNoteRunes caps a single note.
	MaxNoteRunes = 500
)

// Overlays is the persisted part of the state.
type Overlays struct {
	Followed  []string
	Monitored []string
	Progress  map[string]domain.ProgressStatus
	Notes     map[string]string
	Custom    []domain.School
}

// NewOverlays returns empty overlays with non-nil maps.
func NewOverlays() Overlays {
	return Overlays{
		Followed:  []string{},
		Monitored: []string{},
		Progress:  map[string]domain.ProgressStatus{},
		Notes:     map[string]string{},
		Custom:    []domain.School{},
	}
}

func (o Overlays) clone() Overlays {
	c := Overlays{
		Followed:  slices.Clone(o.Followed),
		Monitored: slices.Clone(o.Monitored),
		Progress:  maps.Clone(o.Progress),
		Notes:     maps.Clone(o.Notes),
		Custom:    slices.Clone(o.Custom),
	}
	if c.Progress == nil {
		c.Progress = map[string]domain.ProgressStatus{}
	}
	if c.Notes == nil {
		c.Notes = map[string]string{}
	}
	return c
}

// State is everything the presentation layer renders from. Compared and
// Filter live for the session only.
type State struct {
	Overlays
	Compared []string
	Filter   filter.Spec
}

// New wraps loaded overlays in a fresh session state.
func New(o Overlays) State {
	return State{Overlays: o.clone(), Compared: []string{}}
}

func (s State) clone() State {
	return State{
		Overlays: s.Overlays.clone(),
		Compared: slices.Clone(s.Compared),
		Filter:   s.Filter,
	}
}

// IsFollowed reports whether id is in the follow list.
func (s State) IsFollowed(id string) bool { return slices.Contains(s.Followed, id) }

// IsMonitored reports whether id is flagged for monitoring.
func (s State) IsMonitored(id string) bool { return slices.Contains(s.Monitored, id) }

// IsCompared reports whether id is in the comparison set.
func (s State) IsCompared(id string) bool { return slices.Contains(s.Compared, id) }

// ProgressOf returns the progress entry for id, if any.
func (s State) ProgressOf(id string) (domain.ProgressStatus, bool) {
	st, ok := s.Progress[id]
	return st, ok
}

// NoteOf returns the note for id, or "".
func (s State) NoteOf(id string) string { return s.Notes[id] }

// Effect describes the side effects a transition requires.
type Effect struct {
	Dirty  []string
	Notice *Notice
}

// Changed reports whether any persisted slice was touched.
func (e Effect) Changed() bool { return len(e.Dirty) > 0 }

func dirty(keys ...string) Effect { return Effect{Dirty: keys} }

// ToggleFollow adds or removes id from the follow list. The first follow of
// a school with no progress entry starts it at planning. Unfollowing keeps
// progress and notes.
func ToggleFollow(s State, id string) (State, Effect) {
	next := s.clone()
	if i := slices.Index(next.Followed, id); i >= 0 {
		next.Followed = slices.Delete(next.Followed, i, i+1)
		return next, dirty(KeyFollowed)
	}
	next.Followed = append(next.Followed, id)
	if _, ok := next.Progress[id]; ok {
		return next, dirty(KeyFollowed)
	}
	next.Progress[id] = domain.ProgressPlanning
	return next, dirty(KeyFollowed, KeyProgress)
}

// ToggleMonitor flips the monitor flag for id, independent of following.
func ToggleMonitor(s State, id string) (State, Effect) {
	next := s.clone()
	if i := slices.Index(next.Monitored, id); i >= 0 {
		next.Monitored = slices.Delete(next.Monitored, i, i+1)
	} else {
		next.Monitored = append(next.Monitored, id)
	}
	return next, dirty(KeyMonitored)
}

// ToggleCompare adds or removes id from the comparison set. Adding to a full
// set leaves the state unchanged and returns a notice.
func ToggleCompare(s State, id string) (State, Effect) {
	if i := slices.Index(s.Compared, id); i >= 0 {
		next := s.clone()
		next.Compared = slices.Delete(next.Compared, i, i+1)
		return next, Effect{}
	}
	if len(s.Compared) >= MaxCompared {
		return s, Effect{Notice: CompareFull()}
	}
	next := s.clone()
	next.Compared = append(next.Compared, id)
	return next, Effect{}
}

// ClearCompare empties the comparison set.
func ClearCompare(s State) (State, Effect) {
	next := s.clone()
	next.Compared = []string{}
	return next, Effect{}
}

// SetProgress records status for id. Any status may follow any other.
func SetProgress(s State, id string, status domain.ProgressStatus) (State, Effect) {
	if cur, ok := s.Progress[id]; ok && cur == status {
		return s, Effect{}
	}
	next := s.clone()
	next.Progress[id] = status
	return next, dirty(KeyProgress)
}

// SetNote stores text for id, truncated to MaxNoteRunes.
func SetNote(s State, id, text string) (State, Effect) {
	text = TruncateNote(text)
	if cur, ok := s.Notes[id]; ok && cur == text {
		return s, Effect{}
	}
	next := s.clone()
	next.Notes[id] = text
	return next, dirty(KeyNotes)
}

// TruncateNote cuts text to MaxNoteRunes runes.
func TruncateNote(text string) string {
	if utf8.RuneCountInString(text) <= MaxNoteRunes {
		return text
	}
	return string([]rune(text)[:MaxNoteRunes])
}

// AddCustom appends a user-created school.
func AddCustom(s State, school domain.School) (State, Effect) {
	next := s.clone()
	next.Custom = append(next.Custom, school.Clone())
	return next, dirty(KeyCustom)
}

// SetFilter replaces the active filter criteria.
func SetFilter(s State, spec filter.Spec) (State, Effect) {
	next := s.clone()
	next.Filter = spec
	return next, Effect{}
}

// ClearFilter drops every constraint and keeps the sort order.
func ClearFilter(s State) (State, Effect) {
	return SetFilter(s, s.Filter.Cleared())
}
