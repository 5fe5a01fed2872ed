package display

import (
	"encoding/json"
)

// MarshalJSON marshals with the indentation used everywhere results are
// shown to humans. File serialization goes through the export package; this
// is only for terminal output.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
