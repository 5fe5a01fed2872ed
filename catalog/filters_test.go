package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orbitwatch/neox/neo"
)

func TestMatchesEmptyCriteria(t *testing.T) {
	ca := neo.NewCloseApproach("1", "", "", "")
	assert.True(t, Criteria{}.Matches(ca))
}

func TestDateFiltersRejectUnknownTime(t *testing.T) {
	ca := neo.NewCloseApproach("1", "", "0.5", "10")
	ca.NEO = neo.UnknownObject("1")

	date := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, Criteria{Date: &date}.Matches(ca))
	assert.False(t, Criteria{StartDate: &date}.Matches(ca))
	assert.False(t, Criteria{EndDate: &date}.Matches(ca))
}

func TestHazardousFilterExactMatch(t *testing.T) {
	ca := neo.NewCloseApproach("99942", "2029-Apr-13 21:46", "0.00025", "7.42")
	ca.NEO = neo.NewObject("99942", "Apophis", "0.34", "Y")

	hazardous := true
	notHazardous := false
	assert.True(t, Criteria{Hazardous: &hazardous}.Matches(ca))
	assert.False(t, Criteria{Hazardous: &notHazardous}.Matches(ca))
}

func TestVelocityRange(t *testing.T) {
	ca := neo.NewCloseApproach("1", "2020-Jan-01 00:00", "0.5", "10")
	ca.NEO = neo.UnknownObject("1")

	min, max := 10.0, 10.0
	assert.True(t, Criteria{MinVelocity: &min, MaxVelocity: &max}.Matches(ca), "bounds are inclusive")

	above := 10.5
	assert.False(t, Criteria{MinVelocity: &above}.Matches(ca))
	below := 9.5
	assert.False(t, Criteria{MaxVelocity: &below}.Matches(ca))
}
