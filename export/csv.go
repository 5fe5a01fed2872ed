// Package export serializes query results to CSV and JSON.
//
// Both writers consume a lazy approach sequence so a limited query never
// materializes the full catalog on its way to disk. A failed write leaves
// a partial file behind; callers surface the error instead of masking it.
package export

import (
	"encoding/csv"
	"io"
	"iter"
	"strconv"

	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/neo"
)

// CSVHeader is the fixed column set of the CSV result format.
var CSVHeader = []string{
	"datetime_utc", "distance_au", "velocity_km_s",
	"designation", "name", "diameter_km", "potentially_hazardous",
}

// WriteCSV writes one row per approach, in sequence order, after the fixed
// header. An unknown diameter keeps its NaN token so the unknown marker
// survives a round-trip; an unnamed object writes an empty name cell.
func WriteCSV(w io.Writer, results iter.Seq[*neo.CloseApproach]) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(CSVHeader); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}

	for ca := range results {
		name := ""
		diameter := "NaN"
		hazardous := "false"
		if ca.NEO != nil {
			if ca.NEO.Name != nil {
				name = *ca.NEO.Name
			}
			diameter = formatFloat(ca.NEO.Diameter)
			hazardous = strconv.FormatBool(ca.NEO.Hazardous)
		}

		row := []string{
			ca.TimeStr(),
			formatFloat(ca.Distance),
			formatFloat(ca.Velocity),
			ca.Designation,
			name,
			diameter,
			hazardous,
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "writing CSV row")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flushing CSV output")
}

// formatFloat renders a float with the shortest representation that
// round-trips, matching how the values were parsed.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
