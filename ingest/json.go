package ingest

import (
	"encoding/json"
	"os"

	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/logger"
	"github.com/orbitwatch/neox/neo"
)

// Fields consumed from the close-approach JSON document.
const (
	fieldDesignation = "des"
	fieldCalendar    = "cd"
	fieldDistance    = "dist"
	fieldVelocity    = "v_rel"
)

// LoadApproaches reads close-approach records from the JSON document at
// path. The field list must contain des, cd, dist, and v_rel; data cells
// may arrive as JSON strings or numbers.
func LoadApproaches(path string) ([]*neo.CloseApproach, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening approach data %s", path)
	}
	defer f.Close()

	var doc struct {
		Fields []string `json:"fields"`
		Data   [][]any  `json:"data"`
	}
	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "decoding approach data %s", path)
	}

	idx, err := fieldIndex(doc.Fields, fieldDesignation, fieldCalendar, fieldDistance, fieldVelocity)
	if err != nil {
		return nil, errors.Wrapf(err, "approach data %s", path)
	}

	approaches := make([]*neo.CloseApproach, 0, len(doc.Data))
	for _, row := range doc.Data {
		approaches = append(approaches, neo.NewCloseApproach(
			cell(row, idx[fieldDesignation]),
			cell(row, idx[fieldCalendar]),
			cell(row, idx[fieldDistance]),
			cell(row, idx[fieldVelocity]),
		))
	}

	logger.Infow("Loaded approaches", "path", path, "approaches", len(approaches))
	return approaches, nil
}

// fieldIndex maps each wanted field name to its position in the field list.
func fieldIndex(fields []string, wanted ...string) (map[string]int, error) {
	positions := make(map[string]int, len(fields))
	for i, name := range fields {
		positions[name] = i
	}

	idx := make(map[string]int, len(wanted))
	for _, name := range wanted {
		pos, ok := positions[name]
		if !ok {
			return nil, errors.NewMalformedInputError("missing field %q in field list", name)
		}
		idx[name] = pos
	}
	return idx, nil
}

// cell extracts a data cell as its raw string form. Strings pass through,
// numbers keep their source representation via json.Number, anything else
// (null, short rows) is treated as missing.
func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	switch v := row[i].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
