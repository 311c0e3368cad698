package records

import (
	"context"

	"finledger/internal/models"
)

// State is the view lifecycle. The three states are mutually exclusive and
// exhaustive: Loading until the first fetch resolves, then Ready or Error.
type State int

const (
	Loading State = iota
	Ready
	Error
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// FetchFunc retrieves a record snapshot from the service.
type FetchFunc func(ctx context.Context) ([]models.Record, error)

// View holds one fetched snapshot plus the active filters and the derived
// current subset. The snapshot is fetched once per view and never mutated;
// every filter mutation recomputes the subset synchronously.
type View struct {
	kind    models.Kind
	state   State
	err     error
	raw     []models.Record
	filters Filters
	current []models.Record
}

func NewView(kind models.Kind) *View {
	return &View{kind: kind, state: Loading}
}

// Load performs the view's single fetch attempt. On success the view becomes
// Ready with the snapshot as its current subset; on failure it becomes Error
// without touching any previously held snapshot. A canceled context leaves
// the view entirely untouched so a late result cannot mutate a view whose
// consumer has moved on.
func (v *View) Load(ctx context.Context, fetch FetchFunc) error {
	recs, err := fetch(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		v.state = Error
		v.err = err
		return err
	}

	v.raw = recs
	v.state = Ready
	v.err = nil
	v.recompute()
	return nil
}

func (v *View) recompute() {
	v.current = Apply(v.raw, v.kind, v.filters)
}

// SetDate activates the calendar-date predicate.
func (v *View) SetDate(d Date) {
	v.filters.Date = &d
	v.recompute()
}

// SetClass activates the category/type predicate.
func (v *View) SetClass(class string) {
	v.filters.Class = class
	v.recompute()
}

// ClearFilters drops both predicates, restoring the full snapshot in order.
func (v *View) ClearFilters() {
	v.filters = Filters{}
	v.recompute()
}

func (v *View) Kind() models.Kind        { return v.kind }
func (v *View) State() State             { return v.state }
func (v *View) Err() error               { return v.err }
func (v *View) Filters() Filters         { return v.filters }
func (v *View) Records() []models.Record { return v.current }
