package display

import (
	"iter"
	"math"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/orbitwatch/neox/neo"
)

// ApproachTable renders query results as a terminal table, one row per
// approach in sequence order. Returns the number of rows rendered.
func ApproachTable(results iter.Seq[*neo.CloseApproach]) (int, error) {
	data := pterm.TableData{
		{"Datetime (UTC)", "Distance (au)", "Velocity (km/s)", "Object", "Diameter (km)", "Hazardous"},
	}

	rows := 0
	for ca := range results {
		object := ca.Designation
		diameter := "?"
		hazardous := "no"
		if ca.NEO != nil {
			object = ca.NEO.Fullname()
			if !math.IsNaN(ca.NEO.Diameter) {
				diameter = strconv.FormatFloat(ca.NEO.Diameter, 'f', 3, 64)
			}
			if ca.NEO.Hazardous {
				hazardous = "yes"
			}
		}

		datetime := ca.TimeStr()
		if datetime == "" {
			datetime = "?"
		}

		data = append(data, []string{
			datetime,
			strconv.FormatFloat(ca.Distance, 'f', 6, 64),
			strconv.FormatFloat(ca.Velocity, 'f', 2, 64),
			object,
			diameter,
			hazardous,
		})
		rows++
	}

	if rows == 0 {
		pterm.Info.Println("No approaches matched")
		return 0, nil
	}

	err := pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return rows, err
}

// ObjectSummary prints a single object with its approach count.
func ObjectSummary(o *neo.Object) {
	pterm.DefaultSection.Println(o.Fullname())
	pterm.Println(o.String())
	pterm.Printf("Recorded close approaches: %d\n", len(o.Approaches))
}
