// Package filter turns optional query parameters into owner-scoped store queries.
package filter

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/noah-isme/study-planner-api/internal/models"
)

// Op is a comparison applied to a single column.
type Op string

const (
	OpEq           Op = "eq"
	OpGTE          Op = "gte"
	OpLTE          Op = "lte"
	OpLT           Op = "lt"
	OpContainsFold Op = "contains_fold"
)

// Condition restricts one column.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Order sorts results by one column.
type Order struct {
	Field     string
	Desc      bool
	NullsLast bool
}

// Query is an owner-scoped store query. The owner restriction is carried separately
// from Conditions so parameters can never replace it.
type Query struct {
	OwnerField string
	Owner      string
	Conditions []Condition
	Order      []Order
}

// Kind selects how a parameter is interpreted.
type Kind int

const (
	// Exact matches the column against one of Allowed.
	Exact Kind = iota
	// Contains matches a case-insensitive substring.
	Contains
	// From is an inclusive lower time bound.
	From
	// To is an inclusive upper time bound.
	To
	// DueWindow expands today, tomorrow, week and overdue into a time range.
	DueWindow
)

// Rule binds a query parameter to a column.
type Rule struct {
	Param   string
	Field   string
	Kind    Kind
	Allowed []string
}

// Definition describes the filters a resource accepts.
type Definition struct {
	OwnerField string
	Rules      []Rule
	Order      []Order
	Location   *time.Location
}

// ParamError reports a parameter value that cannot be applied.
type ParamError struct {
	Param  string
	Value  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s filter %q: %s", e.Param, e.Value, e.Reason)
}

// Due window names.
const (
	DueToday    = "today"
	DueTomorrow = "tomorrow"
	DueWeek     = "week"
	DueOverdue  = "overdue"
)

// DueWindows lists the accepted due values.
var DueWindows = []string{DueToday, DueTomorrow, DueWeek, DueOverdue}

// Build returns the query for ownerID. Unknown parameters are ignored and empty
// values apply no restriction.
func (d Definition) Build(ownerID string, params url.Values, now time.Time) (Query, error) {
	ownerField := d.OwnerField
	if ownerField == "" {
		ownerField = "user_id"
	}
	q := Query{
		OwnerField: ownerField,
		Owner:      ownerID,
		Order:      append([]Order(nil), d.Order...),
	}

	loc := d.Location
	if loc == nil {
		loc = now.Location()
	}

	for _, rule := range d.Rules {
		raw := strings.TrimSpace(params.Get(rule.Param))
		if raw == "" {
			continue
		}
		conds, err := rule.conditions(raw, now.In(loc), loc)
		if err != nil {
			return Query{}, err
		}
		q.Conditions = append(q.Conditions, conds...)
	}
	return q, nil
}

func (r Rule) conditions(raw string, now time.Time, loc *time.Location) ([]Condition, error) {
	switch r.Kind {
	case Exact:
		if len(r.Allowed) > 0 && !models.Contains(r.Allowed, raw) {
			return nil, &ParamError{Param: r.Param, Value: raw, Reason: "must be one of " + strings.Join(r.Allowed, ", ")}
		}
		return []Condition{{Field: r.Field, Op: OpEq, Value: raw}}, nil
	case Contains:
		return []Condition{{Field: r.Field, Op: OpContainsFold, Value: raw}}, nil
	case From, To:
		t, err := models.ParseTime(raw, loc)
		if err != nil {
			return nil, &ParamError{Param: r.Param, Value: raw, Reason: "expected an RFC3339 timestamp or YYYY-MM-DD date"}
		}
		op := OpGTE
		if r.Kind == To {
			op = OpLTE
		}
		return []Condition{{Field: r.Field, Op: op, Value: t.UTC()}}, nil
	case DueWindow:
		from, to, err := dueRange(raw, now)
		if err != nil {
			return nil, &ParamError{Param: r.Param, Value: raw, Reason: err.Error()}
		}
		var conds []Condition
		if !from.IsZero() {
			conds = append(conds, Condition{Field: r.Field, Op: OpGTE, Value: from.UTC()})
		}
		return append(conds, Condition{Field: r.Field, Op: OpLT, Value: to.UTC()}), nil
	default:
		return nil, fmt.Errorf("filter: unknown rule kind %d", r.Kind)
	}
}

// dueRange returns the half-open window [from, to) for a symbolic due value.
// A zero from means unbounded.
func dueRange(window string, now time.Time) (time.Time, time.Time, error) {
	day := startOfDay(now)
	switch window {
	case DueToday:
		return day, day.AddDate(0, 0, 1), nil
	case DueTomorrow:
		return day.AddDate(0, 0, 1), day.AddDate(0, 0, 2), nil
	case DueWeek:
		// The week ends on Sunday. On a Sunday the window runs to the following one.
		daysLeft := 7 - int(now.Weekday())
		return now, day.AddDate(0, 0, daysLeft+1), nil
	case DueOverdue:
		return time.Time{}, now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("must be one of %s", strings.Join(DueWindows, ", "))
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
