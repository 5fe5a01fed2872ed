// Package neo defines the near-Earth object entity model.
//
// An Object is a near-Earth astronomical body tracked by its primary
// designation. A CloseApproach is a single recorded close pass of an Object
// near Earth. Constructors take the raw string fields as they appear in the
// source datasets and apply the normalization rules the datasets require:
// missing names, unknown diameters, and unparseable timestamps all have
// explicit in-model representations rather than load-time failures.
package neo

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Object is a near-Earth object (NEO).
//
// The primary designation is required and unique across a catalog. The IAU
// name is optional (nil when the dataset has none), the diameter in
// kilometers is NaN when unknown, and Hazardous reflects the dataset's
// potential-hazard classification.
//
// Approaches is populated once during catalog linking and is ordered by
// approach time ascending. It is not serialized with the object; navigate
// through a catalog instead.
type Object struct {
	Designation string
	Name        *string
	Diameter    float64
	Hazardous   bool
	Approaches  []*CloseApproach
}

// NewObject builds an Object from raw dataset fields.
//
// Normalization rules:
//   - empty designation stays the empty string (usable as a map key)
//   - empty name becomes nil
//   - empty or unparseable diameter becomes NaN
//   - hazardous is true only for the token "Y"
func NewObject(designation, name, diameter, hazardous string) *Object {
	o := &Object{
		Designation: designation,
		Diameter:    math.NaN(),
		Hazardous:   hazardous == "Y",
	}
	if name != "" {
		o.Name = &name
	}
	if diameter != "" {
		if d, err := strconv.ParseFloat(diameter, 64); err == nil {
			o.Diameter = d
		}
	}
	return o
}

// UnknownObject builds the placeholder linked to approaches whose
// designation resolves to no cataloged object: no name, unknown diameter,
// not hazardous. The designation is kept so serialized output stays
// traceable to the source record.
func UnknownObject(designation string) *Object {
	return &Object{
		Designation: designation,
		Diameter:    math.NaN(),
	}
}

// Fullname returns the designation with the parenthesized name,
// e.g. "433 (Eros)", or just the designation when the object is unnamed.
func (o *Object) Fullname() string {
	if o.Name == nil {
		return o.Designation
	}
	return fmt.Sprintf("%s (%s)", o.Designation, *o.Name)
}

// HasName reports whether the object carries an IAU name.
func (o *Object) HasName() bool {
	return o.Name != nil
}

func (o *Object) String() string {
	hazard := "is not potentially hazardous"
	if o.Hazardous {
		hazard = "is potentially hazardous"
	}
	return fmt.Sprintf("NEO %s has a diameter of %.3f km and %s", o.Fullname(), o.Diameter, hazard)
}

// MarshalJSON serializes the object fields the result wire format uses.
// NaN has no JSON representation, so an unknown diameter becomes null,
// as does a missing name. Approaches are deliberately omitted.
func (o *Object) MarshalJSON() ([]byte, error) {
	var diameter *float64
	if !math.IsNaN(o.Diameter) {
		diameter = &o.Diameter
	}
	return json.Marshal(struct {
		Designation string   `json:"designation"`
		Name        *string  `json:"name"`
		Diameter    *float64 `json:"diameter_km"`
		Hazardous   bool     `json:"potentially_hazardous"`
	}{o.Designation, o.Name, diameter, o.Hazardous})
}

// CloseApproach is a close approach to Earth by an NEO.
//
// Time is the UTC timestamp of closest approach at minute precision, nil
// when the source record had none or it failed to parse. Distance is the
// nominal approach distance in astronomical units and Velocity the relative
// approach velocity in km/s; both default to 0 when missing.
//
// NEO is set exactly once during catalog linking and afterwards always
// resolves: either to the cataloged object for Designation or to an
// UnknownObject placeholder.
type CloseApproach struct {
	Designation string
	Time        *time.Time
	Distance    float64
	Velocity    float64
	NEO         *Object
}

// NewCloseApproach builds a CloseApproach from raw dataset fields.
// The calendar date uses the dataset's "2020-Jan-01 12:30" form; missing or
// unparseable dates become a nil Time. Missing distance or velocity
// default to 0.
func NewCloseApproach(designation, calendarDate, distance, velocity string) *CloseApproach {
	ca := &CloseApproach{
		Designation: designation,
		Time:        ParseCalendar(calendarDate),
	}
	if distance != "" {
		if d, err := strconv.ParseFloat(distance, 64); err == nil {
			ca.Distance = d
		}
	}
	if velocity != "" {
		if v, err := strconv.ParseFloat(velocity, 64); err == nil {
			ca.Velocity = v
		}
	}
	return ca
}

// TimeStr returns the approach time in the canonical minute-precision
// format, or the empty string when the time is unknown.
func (ca *CloseApproach) TimeStr() string {
	return FormatTime(ca.Time)
}

func (ca *CloseApproach) String() string {
	who := ca.Designation
	if ca.NEO != nil {
		who = ca.NEO.Fullname()
	}
	return fmt.Sprintf("At %s, %q approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		ca.TimeStr(), who, ca.Distance, ca.Velocity)
}

// MarshalJSON serializes the approach in the result wire format: a flat
// record with the canonical time string and a nested neo object. An unknown
// time becomes null.
func (ca *CloseApproach) MarshalJSON() ([]byte, error) {
	var datetime *string
	if ca.Time != nil {
		s := FormatTime(ca.Time)
		datetime = &s
	}
	return json.Marshal(struct {
		Datetime *string `json:"datetime_utc"`
		Distance float64 `json:"distance_au"`
		Velocity float64 `json:"velocity_km_s"`
		NEO      *Object `json:"neo"`
	}{datetime, ca.Distance, ca.Velocity, ca.NEO})
}
