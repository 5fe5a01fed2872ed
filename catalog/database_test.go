package catalog

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitwatch/neox/neo"
)

func buildTestDatabase(t *testing.T) *Database {
	t.Helper()

	objects := []*neo.Object{
		neo.NewObject("433", "Eros", "16.84", "N"),
		neo.NewObject("99942", "Apophis", "0.34", "Y"),
		neo.NewObject("2020 AB", "", "", "N"),
	}
	approaches := []*neo.CloseApproach{
		neo.NewCloseApproach("99942", "2029-Apr-13 21:46", "0.00025", "7.42"),
		neo.NewCloseApproach("433", "2020-Jan-01 00:00", "0.5", "10.0"),
		neo.NewCloseApproach("655", "2021-Jun-15 08:00", "0.1", "5.5"), // no matching object
		neo.NewCloseApproach("2020 AB", "2020-Jan-01 12:00", "0.03", "18.2"),
		neo.NewCloseApproach("433", "2021-Jun-15 08:00", "0.4", "9.1"),
	}
	return Build(objects, approaches)
}

func collect(t *testing.T, seq func(func(*neo.CloseApproach) bool)) []*neo.CloseApproach {
	t.Helper()
	var out []*neo.CloseApproach
	for ca := range seq {
		out = append(out, ca)
	}
	return out
}

func TestBuildLinksEveryApproach(t *testing.T) {
	db := buildTestDatabase(t)

	assert.Equal(t, 3, db.ObjectCount())
	assert.Equal(t, 5, db.ApproachCount())
	assert.Equal(t, 1, db.UnlinkedCount())

	for ca := range db.All() {
		require.NotNil(t, ca.NEO, "approach %s must link to an object or placeholder", ca.Designation)
	}
}

func TestBuildSortsByTimeAscending(t *testing.T) {
	db := buildTestDatabase(t)

	all := collect(t, db.All())
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1].Time, all[i].Time
		if prev != nil && cur != nil {
			assert.False(t, cur.Before(*prev), "approaches out of order at %d", i)
		}
	}
	assert.Equal(t, "2020-01-01 00:00", all[0].TimeStr())
	assert.Equal(t, "2029-04-13 21:46", all[4].TimeStr())
}

func TestBuildStableSortOnEqualTimes(t *testing.T) {
	db := buildTestDatabase(t)

	// "655" and the second "433" approach share a timestamp; input order
	// is preserved between them.
	all := collect(t, db.All())
	assert.Equal(t, "655", all[2].Designation)
	assert.Equal(t, "433", all[3].Designation)
}

func TestBuildNilTimesSortFirst(t *testing.T) {
	objects := []*neo.Object{neo.NewObject("1", "", "", "N")}
	approaches := []*neo.CloseApproach{
		neo.NewCloseApproach("1", "2020-Jan-01 00:00", "0.5", "10"),
		neo.NewCloseApproach("1", "", "0.1", "2"),
	}
	db := Build(objects, approaches)

	all := collect(t, db.All())
	require.Len(t, all, 2)
	assert.Nil(t, all[0].Time)
	require.NotNil(t, all[1].Time)
}

func TestObjectByDesignation(t *testing.T) {
	db := buildTestDatabase(t)

	o, ok := db.ObjectByDesignation("433")
	require.True(t, ok)
	assert.Equal(t, "433 (Eros)", o.Fullname())

	_, ok = db.ObjectByDesignation("does-not-exist")
	assert.False(t, ok)

	// Case-sensitive exact match
	_, ok = db.ObjectByDesignation("2020 ab")
	assert.False(t, ok)

	// Unknown placeholders never enter the index
	_, ok = db.ObjectByDesignation("655")
	assert.False(t, ok)
}

func TestObjectByName(t *testing.T) {
	db := buildTestDatabase(t)

	o, ok := db.ObjectByName("Apophis")
	require.True(t, ok)
	assert.Equal(t, "99942", o.Designation)

	_, ok = db.ObjectByName("apophis")
	assert.False(t, ok)

	// Unnamed objects never match by name
	_, ok = db.ObjectByName("")
	assert.False(t, ok)
}

func TestLinkedObjectApproaches(t *testing.T) {
	db := buildTestDatabase(t)

	o, ok := db.ObjectByDesignation("433")
	require.True(t, ok)
	require.Len(t, o.Approaches, 2)
	assert.Equal(t, "2020-01-01 00:00", o.Approaches[0].TimeStr())
	assert.Equal(t, "2021-06-15 08:00", o.Approaches[1].TimeStr())
	for _, ca := range o.Approaches {
		assert.Same(t, o, ca.NEO)
	}
}

// The worked example from the project brief: one object, one approach.
func TestErosExample(t *testing.T) {
	objects := []*neo.Object{neo.NewObject("433", "Eros", "16.84", "N")}
	approaches := []*neo.CloseApproach{neo.NewCloseApproach("433", "2020-Jan-01 00:00", "0.5", "10.0")}
	db := Build(objects, approaches)

	o, ok := db.ObjectByDesignation("433")
	require.True(t, ok)
	require.Len(t, o.Approaches, 1)
	assert.Equal(t, "433 (Eros)", o.Approaches[0].NEO.Fullname())
}

func TestUnknownDesignationGetsSharedPlaceholder(t *testing.T) {
	objects := []*neo.Object{neo.NewObject("1", "", "", "N")}
	approaches := []*neo.CloseApproach{
		neo.NewCloseApproach("655", "2020-Jan-01 00:00", "0.1", "5"),
		neo.NewCloseApproach("655", "2021-Jan-01 00:00", "0.2", "6"),
	}
	db := Build(objects, approaches)

	all := collect(t, db.All())
	require.Len(t, all, 2)
	require.NotNil(t, all[0].NEO)
	assert.Same(t, all[0].NEO, all[1].NEO, "one placeholder per designation")
	assert.Equal(t, "655", all[0].NEO.Designation)
	assert.True(t, math.IsNaN(all[0].NEO.Diameter))
	assert.False(t, all[0].NEO.HasName())

	// Still present in the full result set
	assert.Len(t, db.ApproachesFor("655"), 2)
}

func TestQueryNoFiltersReturnsAllInOrder(t *testing.T) {
	db := buildTestDatabase(t)

	all := collect(t, db.All())
	queried := collect(t, db.Query(Criteria{}))
	assert.Equal(t, all, queried)
}

func TestQueryIsRestartable(t *testing.T) {
	db := buildTestDatabase(t)

	seq := db.Query(Criteria{})
	first := collect(t, seq)
	second := collect(t, seq)
	assert.Equal(t, first, second)
}

func TestLimit(t *testing.T) {
	db := buildTestDatabase(t)

	all := collect(t, db.All())

	limited := collect(t, Limit(db.Query(Criteria{}), 2))
	assert.Equal(t, all[:2], limited)

	// Zero and negative mean unbounded
	assert.Len(t, collect(t, Limit(db.Query(Criteria{}), 0)), 5)
	assert.Len(t, collect(t, Limit(db.Query(Criteria{}), -1)), 5)

	// Limit beyond the result size is harmless
	assert.Len(t, collect(t, Limit(db.Query(Criteria{}), 100)), 5)
}

func TestLimitDoesNotOverconsume(t *testing.T) {
	pulled := 0
	source := func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	var got []int
	for v := range Limit[int](source, 3) {
		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 3, pulled, "limit must not pull past n from a lazy source")
}

func TestQueryHazardousSubset(t *testing.T) {
	db := buildTestDatabase(t)

	hazardous := true
	matched := collect(t, db.Query(Criteria{Hazardous: &hazardous}))
	require.Len(t, matched, 1)
	assert.Equal(t, "99942", matched[0].Designation)

	all := collect(t, db.All())
	assert.Subset(t, all, matched)
}

func TestQueryConjunctionIsIntersection(t *testing.T) {
	db := buildTestDatabase(t)

	minDist := 0.05
	maxVel := 10.0

	byDistance := collect(t, db.Query(Criteria{MinDistance: &minDist}))
	byVelocity := collect(t, db.Query(Criteria{MaxVelocity: &maxVel}))
	combined := collect(t, db.Query(Criteria{MinDistance: &minDist, MaxVelocity: &maxVel}))

	for _, ca := range combined {
		assert.Contains(t, byDistance, ca)
		assert.Contains(t, byVelocity, ca)
	}
	// Everything in both individual sets appears in the combination
	for _, ca := range byDistance {
		if containsApproach(byVelocity, ca) {
			assert.Contains(t, combined, ca)
		}
	}
}

func containsApproach(list []*neo.CloseApproach, ca *neo.CloseApproach) bool {
	for _, other := range list {
		if other == ca {
			return true
		}
	}
	return false
}

func TestQueryByDate(t *testing.T) {
	db := buildTestDatabase(t)

	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	matched := collect(t, db.Query(Criteria{Date: &date}))
	require.Len(t, matched, 2, "both approaches on that day regardless of hour")
	for _, ca := range matched {
		assert.Equal(t, "2020-01-01", ca.Time.Format("2006-01-02"))
	}
}

func TestQueryByDateRange(t *testing.T) {
	db := buildTestDatabase(t)

	start := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC)
	matched := collect(t, db.Query(Criteria{StartDate: &start, EndDate: &end}))
	require.Len(t, matched, 2)

	// Bounds are inclusive of the whole end day
	endOnDay := time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)
	matched = collect(t, db.Query(Criteria{StartDate: &endOnDay, EndDate: &endOnDay}))
	assert.Len(t, matched, 2)

	// Open-ended range
	matched = collect(t, db.Query(Criteria{StartDate: &start}))
	assert.Len(t, matched, 3)
}

func TestQueryByDiameter(t *testing.T) {
	db := buildTestDatabase(t)

	minDiam := 1.0
	matched := collect(t, db.Query(Criteria{MinDiameter: &minDiam}))
	require.Len(t, matched, 2)
	for _, ca := range matched {
		assert.Equal(t, "433", ca.Designation)
	}

	// NaN diameters (unnamed object "2020 AB" and the "655" placeholder)
	// never match any bounded range
	zero := 0.0
	huge := 1e9
	matched = collect(t, db.Query(Criteria{MinDiameter: &zero, MaxDiameter: &huge}))
	for _, ca := range matched {
		assert.False(t, math.IsNaN(ca.NEO.Diameter))
	}
}

func TestQueryInclusiveBounds(t *testing.T) {
	db := buildTestDatabase(t)

	exact := 0.5
	matched := collect(t, db.Query(Criteria{MinDistance: &exact, MaxDistance: &exact}))
	require.Len(t, matched, 1)
	assert.Equal(t, 0.5, matched[0].Distance)
}

func TestQueryUnknownObjectApproachStillAppears(t *testing.T) {
	db := buildTestDatabase(t)

	all := collect(t, db.All())
	var found *neo.CloseApproach
	for _, ca := range all {
		if ca.Designation == "655" {
			found = ca
		}
	}
	require.NotNil(t, found, "unlinked approach must appear in the full result set")
	assert.True(t, math.IsNaN(found.NEO.Diameter))
	assert.Nil(t, found.NEO.Name)
}
