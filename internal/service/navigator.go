// Package service owns the in-memory navigator state and applies the
// side effects of every transition: persisting dirty slices and
// recomputing derived views.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/hknav/internal/advisor"
	"github.com/alexanderramin/hknav/internal/catalog"
	"github.com/alexanderramin/hknav/internal/dashboard"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
	"github.com/alexanderramin/hknav/internal/repository"
	"github.com/alexanderramin/hknav/internal/state"
)

// CustomIDPrefix prefixes the ids of user-added schools.
const CustomIDPrefix = "custom-"

// Navigator is the single owner of the user's session. It is not safe for
// concurrent use; callers serialize access the way the TUI update loop does.
type Navigator struct {
	store    *state.Store
	base     []domain.School
	catalog  *catalog.Catalog
	state    state.State
	advisor  *advisor.Service
	observer UseCaseObserver
	now      func() time.Time
	newID    func() string
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithAdvisor enables the ask, monitor and lookup operations.
func WithAdvisor(a *advisor.Service) Option {
	return func(n *Navigator) { n.advisor = a }
}

// WithObserver reports every use case to obs.
func WithObserver(obs UseCaseObserver) Option {
	return func(n *Navigator) {
		if obs != nil {
			n.observer = obs
		}
	}
}

// WithBaseCatalog replaces the built-in schools.
func WithBaseCatalog(base []domain.School) Option {
	return func(n *Navigator) { n.base = base }
}

// WithClock overrides the time source used for deadline countdowns.
func WithClock(now func() time.Time) Option {
	return func(n *Navigator) { n.now = now }
}

// WithIDGenerator overrides how custom school ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(n *Navigator) { n.newID = gen }
}

// Open loads every persisted slice once and builds the catalog with the
// stored custom schools appended.
func Open(ctx context.Context, store *state.Store, opts ...Option) *Navigator {
	n := &Navigator{
		store:    store,
		observer: NoopUseCaseObserver{},
		now:      time.Now,
		newID:    func() string { return CustomIDPrefix + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(n)
	}

	sp := n.begin(ctx, "open")
	overlays := store.LoadAll(ctx)
	if n.base != nil {
		n.catalog = catalog.New(n.base, overlays.Custom)
	} else {
		n.catalog = catalog.Default(overlays.Custom)
	}
	n.state = state.New(overlays)
	sp.set("catalog", n.catalog.Len())
	sp.set("followed", len(overlays.Followed))
	sp.end(nil)
	return n
}

// State returns a snapshot of the current session.
func (n *Navigator) State() state.State { return n.state }

// Catalog returns the catalog including custom schools.
func (n *Navigator) Catalog() *catalog.Catalog { return n.catalog }

// Now returns the navigator's current time.
func (n *Navigator) Now() time.Time { return n.now() }

// School resolves one id.
func (n *Navigator) School(id string) (domain.School, error) {
	return n.catalog.Get(id)
}

// apply installs next and writes each dirty slice. A failed write leaves
// the in-memory change in place and is reported as a warning notice.
func (n *Navigator) apply(sp *span, next state.State, eff state.Effect) *state.Notice {
	n.state = next
	notice := eff.Notice
	var failed error
	for _, key := range eff.Dirty {
		if err := n.store.SaveSlice(sp.ctx, key, n.state.Overlays); err != nil {
			if failed == nil {
				notice = state.PersistFailed(key, err)
			}
			failed = errors.Join(failed, err)
		}
	}
	if notice != nil {
		sp.set("notice", string(notice.Kind))
	}
	sp.end(failed)
	return notice
}

func (n *Navigator) resolve(sp *span, id string) error {
	sp.set("school_id", id)
	if _, err := n.catalog.Get(id); err != nil {
		sp.end(err)
		return err
	}
	return nil
}

// ToggleFollow follows or unfollows id.
func (n *Navigator) ToggleFollow(ctx context.Context, id string) (*state.Notice, error) {
	sp := n.begin(ctx, "toggle_follow")
	if err := n.resolve(sp, id); err != nil {
		return nil, err
	}
	next, eff := state.ToggleFollow(n.state, id)
	return n.apply(sp, next, eff), nil
}

// ToggleMonitor flips the monitor flag of id.
func (n *Navigator) ToggleMonitor(ctx context.Context, id string) (*state.Notice, error) {
	sp := n.begin(ctx, "toggle_monitor")
	if err := n.resolve(sp, id); err != nil {
		return nil, err
	}
	next, eff := state.ToggleMonitor(n.state, id)
	return n.apply(sp, next, eff), nil
}

// ToggleCompare adds id to or removes it from the comparison set.
func (n *Navigator) ToggleCompare(ctx context.Context, id string) (*state.Notice, error) {
	sp := n.begin(ctx, "toggle_compare")
	if err := n.resolve(sp, id); err != nil {
		return nil, err
	}
	next, eff := state.ToggleCompare(n.state, id)
	return n.apply(sp, next, eff), nil
}

// ClearCompare empties the comparison set.
func (n *Navigator) ClearCompare(ctx context.Context) {
	sp := n.begin(ctx, "clear_compare")
	next, eff := state.ClearCompare(n.state)
	n.apply(sp, next, eff)
}

// SetProgress records the funnel stage of id.
func (n *Navigator) SetProgress(ctx context.Context, id string, status domain.ProgressStatus) (*state.Notice, error) {
	sp := n.begin(ctx, "set_progress")
	if !status.IsValid() {
		err := fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
		sp.end(err)
		return nil, err
	}
	if err := n.resolve(sp, id); err != nil {
		return nil, err
	}
	sp.set("status", string(status))
	next, eff := state.SetProgress(n.state, id, status)
	return n.apply(sp, next, eff), nil
}

// SetNote replaces the note of id.
func (n *Navigator) SetNote(ctx context.Context, id, text string) (*state.Notice, error) {
	sp := n.begin(ctx, "set_note")
	if err := n.resolve(sp, id); err != nil {
		return nil, err
	}
	next, eff := state.SetNote(n.state, id, text)
	return n.apply(sp, next, eff), nil
}

// SetFilter replaces the filter criteria.
func (n *Navigator) SetFilter(spec filter.Spec) {
	n.state, _ = state.SetFilter(n.state, spec)
}

// ClearFilter drops every filter constraint.
func (n *Navigator) ClearFilter() {
	n.state, _ = state.ClearFilter(n.state)
}

// AddSchool builds a custom school from draft, appends it to the catalog and
// persists it.
func (n *Navigator) AddSchool(ctx context.Context, draft domain.SchoolDraft) (domain.School, *state.Notice, error) {
	sp := n.begin(ctx, "add_school")
	school, err := draft.Build(n.newID(), n.catalog.NextRanking())
	if err != nil {
		sp.end(err)
		return domain.School{}, nil, fmt.Errorf("building school: %w", err)
	}
	if err := n.catalog.Append(school); err != nil {
		sp.end(err)
		return domain.School{}, nil, err
	}
	sp.set("school_id", school.ID)
	next, eff := state.AddCustom(n.state, school)
	return school, n.apply(sp, next, eff), nil
}

// Visible is the catalog after the current filter and sort.
func (n *Navigator) Visible() []domain.School {
	return filter.Apply(n.catalog.All(), n.state.Filter)
}

// Followed resolves the follow list in follow order.
func (n *Navigator) Followed() []domain.School {
	return n.catalog.Lookup(n.state.Followed)
}

// Monitored resolves the monitor list in flag order.
func (n *Navigator) Monitored() []domain.School {
	return n.catalog.Lookup(n.state.Monitored)
}

// Compared resolves the comparison set in selection order.
func (n *Navigator) Compared() []domain.School {
	return n.catalog.Lookup(n.state.Compared)
}

// Dashboard aggregates the followed schools.
func (n *Navigator) Dashboard() dashboard.Summary {
	return dashboard.Build(n.Followed(), n.state.Progress, n.now())
}

// Districts groups the visible schools by district.
func (n *Navigator) Districts(limit int) []filter.DistrictGroup {
	return filter.GroupByDistrict(n.Visible(), limit)
}

// Storage lists the persisted slices.
func (n *Navigator) Storage(ctx context.Context) ([]repository.SliceInfo, error) {
	return n.store.Inventory(ctx)
}

// Reset deletes all persisted tracking data and custom schools and starts
// a fresh session over the built-in catalog.
func (n *Navigator) Reset(ctx context.Context) error {
	sp := n.begin(ctx, "reset")
	if err := n.store.Reset(ctx); err != nil {
		sp.end(err)
		return err
	}
	if n.base != nil {
		n.catalog = catalog.New(n.base, nil)
	} else {
		n.catalog = catalog.Default(nil)
	}
	n.state = state.New(state.NewOverlays())
	sp.end(nil)
	return nil
}

// ErrNoAdvisor indicates the navigator was opened without an advisor.
var ErrNoAdvisor = errors.New("assistant is not configured")

// Consult is an advisory call prepared against a snapshot of the session.
// It reads no navigator state, so it may run on another goroutine while the
// navigator keeps changing.
type Consult func(ctx context.Context) string

// Ask forwards a question to the assistant with the catalog as context.
func (n *Navigator) Ask(ctx context.Context, question string) (string, error) {
	call, err := n.PrepareAsk(question)
	if err != nil {
		return "", err
	}
	return call(ctx), nil
}

// PrepareAsk snapshots the catalog for an Ask that runs later.
func (n *Navigator) PrepareAsk(question string) (Consult, error) {
	if n.advisor == nil {
		return nil, ErrNoAdvisor
	}
	schools := n.catalog.All()
	return func(ctx context.Context) string {
		sp := n.begin(ctx, "ask")
		answer := n.advisor.Ask(ctx, question, schools)
		sp.set("answer_len", len(answer))
		sp.end(nil)
		return answer
	}, nil
}

// Monitor requests a news digest for the monitored schools. With nothing
// monitored it returns a notice without contacting the assistant. A failed
// call yields an empty digest and no notice.
func (n *Navigator) Monitor(ctx context.Context) (string, *state.Notice, error) {
	call, notice, err := n.PrepareMonitor(ctx)
	if err != nil || notice != nil {
		return "", notice, err
	}
	return call(ctx), nil, nil
}

// PrepareMonitor snapshots the monitor list. When nothing is monitored it
// returns the notice and no call.
func (n *Navigator) PrepareMonitor(ctx context.Context) (Consult, *state.Notice, error) {
	if n.advisor == nil {
		return nil, nil, ErrNoAdvisor
	}
	schools := n.Monitored()
	if len(schools) == 0 {
		sp := n.begin(ctx, "monitor")
		notice := state.NothingMonitored()
		sp.set("schools", 0)
		sp.set("notice", string(notice.Kind))
		sp.end(nil)
		return nil, notice, nil
	}
	names := make([]string, len(schools))
	for i, s := range schools {
		names[i] = s.DisplayName()
	}
	return func(ctx context.Context) string {
		sp := n.begin(ctx, "monitor")
		sp.set("schools", len(names))
		digest, ok := n.advisor.Monitor(ctx, names)
		sp.set("ok", ok)
		sp.end(nil)
		return digest
	}, nil, nil
}

// Lookup prefills a draft for name. Values that fail validation are
// dropped and listed in the notice.
func (n *Navigator) Lookup(ctx context.Context, name string, draft *domain.SchoolDraft) (*state.Notice, error) {
	if n.advisor == nil {
		return nil, ErrNoAdvisor
	}
	sp := n.begin(ctx, "lookup")
	partial, ok := n.advisor.Lookup(ctx, name)
	sp.set("ok", ok)
	if !ok {
		notice := state.LookupFailed()
		sp.set("notice", string(notice.Kind))
		sp.end(nil)
		return notice, nil
	}
	rejected := draft.Merge(*partial)
	sp.set("rejected", len(rejected))
	sp.end(nil)
	if len(rejected) > 0 {
		return state.LookupFieldsDropped(rejected), nil
	}
	return nil, nil
}
