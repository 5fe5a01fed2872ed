// Package ingest loads the two source datasets into the entity model.
//
// The object catalog arrives as CSV and the close-approach records as JSON.
// Both loaders locate the columns they consume by header name, never by
// position, and fail fast with a malformed-input error when an expected
// column is absent. Row values are handed to the neo constructors raw; all
// defaulting lives in the model.
package ingest

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/orbitwatch/neox/errors"
	"github.com/orbitwatch/neox/logger"
	"github.com/orbitwatch/neox/neo"
)

// Columns consumed from the object catalog CSV.
const (
	colDesignation = "pdes"
	colName        = "name"
	colHazardous   = "pha"
	colDiameter    = "diameter"
)

// LoadObjects reads near-Earth objects from the catalog CSV at path.
// The header must contain the pdes, name, pha, and diameter columns in any
// order; anything else in the file is ignored.
func LoadObjects(path string) ([]*neo.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening object catalog %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "reading object catalog header from %s", path)
	}

	idx, err := columnIndex(header, colDesignation, colName, colHazardous, colDiameter)
	if err != nil {
		return nil, errors.Wrapf(err, "object catalog %s", path)
	}

	var objects []*neo.Object
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading object catalog row from %s", path)
		}
		objects = append(objects, neo.NewObject(
			row[idx[colDesignation]],
			row[idx[colName]],
			row[idx[colDiameter]],
			row[idx[colHazardous]],
		))
	}

	logger.Infow("Loaded objects", "path", path, "objects", len(objects))
	return objects, nil
}

// columnIndex maps each wanted column name to its position in the header.
// A missing column is a malformed-input error naming the column.
func columnIndex(header []string, wanted ...string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	idx := make(map[string]int, len(wanted))
	for _, name := range wanted {
		pos, ok := positions[name]
		if !ok {
			return nil, errors.NewMalformedInputError("missing column %q in header", name)
		}
		idx[name] = pos
	}
	return idx, nil
}
