package export

import (
	"encoding/json"
	"io"
	"iter"

	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/neo"
)

// WriteJSON writes the approaches as an indented JSON array, one record
// per approach in sequence order. Record shape comes from the model's
// serialization: a flat approach record with a nested neo object, nulls
// for unknown time, name, and diameter.
func WriteJSON(w io.Writer, results iter.Seq[*neo.CloseApproach]) error {
	// Materialize only what the (already limited) sequence yields; the
	// array form requires knowing the full result anyway.
	records := []*neo.CloseApproach{}
	for ca := range results {
		records = append(records, ca)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(records), "encoding JSON output")
}
