package catalog

import (
	"math"
	"time"

	"github.com/orbitwatch/neox/neo"
)

// Criteria is the set of optional filters a query conjoins. A nil bound
// imposes no constraint; all bounds are inclusive.
//
// Predicates are checked in a fixed order chosen for cheap short-circuiting
// on large scans: date, date range, distance, velocity, diameter,
// hazardous. The result is order-independent since the combination is a
// pure conjunction.
type Criteria struct {
	// Date matches approaches on this exact calendar day (UTC).
	Date *time.Time
	// StartDate/EndDate bound the approach day, either side optional.
	StartDate *time.Time
	EndDate   *time.Time

	// Approach distance bounds, astronomical units.
	MinDistance *float64
	MaxDistance *float64

	// Relative velocity bounds, km/s.
	MinVelocity *float64
	MaxVelocity *float64

	// Linked object diameter bounds, kilometers. An object with unknown
	// (NaN) diameter never matches a bounded range.
	MinDiameter *float64
	MaxDiameter *float64

	// Hazardous matches the linked object's classification exactly.
	Hazardous *bool
}

type predicate func(*neo.CloseApproach) bool

// sameDay reports whether t falls on the calendar day of d, both UTC.
func sameDay(t, d time.Time) bool {
	ty, tm, td := t.UTC().Date()
	dy, dm, dd := d.UTC().Date()
	return ty == dy && tm == dm && td == dd
}

// dayOf truncates a timestamp to its UTC calendar day for inclusive
// day-granularity range comparisons.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// predicates assembles the active filters in checking order.
func (c Criteria) predicates() []predicate {
	var preds []predicate

	if c.Date != nil {
		date := *c.Date
		preds = append(preds, func(ca *neo.CloseApproach) bool {
			return ca.Time != nil && sameDay(*ca.Time, date)
		})
	}
	if c.StartDate != nil || c.EndDate != nil {
		start, end := c.StartDate, c.EndDate
		preds = append(preds, func(ca *neo.CloseApproach) bool {
			if ca.Time == nil {
				return false
			}
			day := dayOf(*ca.Time)
			if start != nil && day.Before(dayOf(*start)) {
				return false
			}
			if end != nil && day.After(dayOf(*end)) {
				return false
			}
			return true
		})
	}
	if c.MinDistance != nil || c.MaxDistance != nil {
		preds = append(preds, rangePredicate(c.MinDistance, c.MaxDistance, func(ca *neo.CloseApproach) float64 {
			return ca.Distance
		}))
	}
	if c.MinVelocity != nil || c.MaxVelocity != nil {
		preds = append(preds, rangePredicate(c.MinVelocity, c.MaxVelocity, func(ca *neo.CloseApproach) float64 {
			return ca.Velocity
		}))
	}
	if c.MinDiameter != nil || c.MaxDiameter != nil {
		preds = append(preds, rangePredicate(c.MinDiameter, c.MaxDiameter, func(ca *neo.CloseApproach) float64 {
			if ca.NEO == nil {
				return math.NaN()
			}
			return ca.NEO.Diameter
		}))
	}
	if c.Hazardous != nil {
		hazardous := *c.Hazardous
		preds = append(preds, func(ca *neo.CloseApproach) bool {
			return ca.NEO != nil && ca.NEO.Hazardous == hazardous
		})
	}

	return preds
}

// rangePredicate builds an inclusive numeric range check over the extracted
// value. NaN fails every bounded comparison, which is exactly the contract
// for unknown diameters.
func rangePredicate(min, max *float64, value func(*neo.CloseApproach) float64) predicate {
	return func(ca *neo.CloseApproach) bool {
		v := value(ca)
		if min != nil && !(v >= *min) {
			return false
		}
		if max != nil && !(v <= *max) {
			return false
		}
		return true
	}
}

// matches evaluates the conjunction, short-circuiting on the first failure.
func matches(ca *neo.CloseApproach, preds []predicate) bool {
	for _, p := range preds {
		if !p(ca) {
			return false
		}
	}
	return true
}

// Matches reports whether a single approach satisfies every active filter.
func (c Criteria) Matches(ca *neo.CloseApproach) bool {
	return matches(ca, c.predicates())
}
