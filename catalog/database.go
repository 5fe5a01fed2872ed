// Package catalog links the two NEO datasets into one queryable database.
//
// Build joins a loaded object catalog with its close-approach records:
// every approach resolves its designation against the object index and is
// linked either to the matching object or to an unknown-object placeholder.
// No approach is ever dropped. The linked approach list is held in stable
// time-ascending order, and queries over it are lazy sequences so a limit
// never pays for a full scan.
package catalog

import (
	"iter"
	"sort"

	"github.com/orbitwatch/neox/logger"
	"github.com/orbitwatch/neox/neo"
)

// Database is the linked, indexed view over both datasets. Build once at
// startup; all reads afterwards are pure in-memory lookups.
type Database struct {
	approaches []*neo.CloseApproach

	byDesignation map[string]*neo.Object
	byName        map[string]*neo.Object
	approachesFor map[string][]*neo.CloseApproach

	// unknown holds one placeholder per unresolvable designation so
	// repeated misses share a sentinel. These never enter the lookup
	// indices above.
	unknown map[string]*neo.Object
}

// Build constructs the database from loaded objects and approaches.
//
// Approaches are stably sorted by time ascending before linking (unknown
// times order first, ties keep input order), so every per-object approach
// list inherits the same deterministic order. The input slices are not
// retained.
func Build(objects []*neo.Object, approaches []*neo.CloseApproach) *Database {
	db := &Database{
		approaches:    make([]*neo.CloseApproach, len(approaches)),
		byDesignation: make(map[string]*neo.Object, len(objects)),
		byName:        make(map[string]*neo.Object),
		approachesFor: make(map[string][]*neo.CloseApproach),
		unknown:       make(map[string]*neo.Object),
	}

	for _, o := range objects {
		db.byDesignation[o.Designation] = o
		if o.Name != nil {
			db.byName[*o.Name] = o
		}
	}

	copy(db.approaches, approaches)
	sort.SliceStable(db.approaches, func(i, j int) bool {
		ti, tj := db.approaches[i].Time, db.approaches[j].Time
		if ti == nil {
			return tj != nil
		}
		if tj == nil {
			return false
		}
		return ti.Before(*tj)
	})

	unlinked := 0
	for _, ca := range db.approaches {
		if o, ok := db.byDesignation[ca.Designation]; ok {
			ca.NEO = o
			o.Approaches = append(o.Approaches, ca)
		} else {
			ca.NEO = db.unknownFor(ca.Designation)
			unlinked++
		}
		db.approachesFor[ca.Designation] = append(db.approachesFor[ca.Designation], ca)
	}

	logger.Debugw("Linked catalog",
		"objects", len(objects),
		"approaches", len(db.approaches),
	)
	if unlinked > 0 {
		logger.Warnw("Approaches with no cataloged object", "unlinked", unlinked)
	}

	return db
}

func (db *Database) unknownFor(designation string) *neo.Object {
	if o, ok := db.unknown[designation]; ok {
		return o
	}
	o := neo.UnknownObject(designation)
	db.unknown[designation] = o
	return o
}

// ObjectByDesignation returns the object with the exact designation.
// Placeholders for unresolvable approach designations never match.
func (db *Database) ObjectByDesignation(designation string) (*neo.Object, bool) {
	o, ok := db.byDesignation[designation]
	return o, ok
}

// ObjectByName returns the object with the exact IAU name.
// Unnamed objects never match.
func (db *Database) ObjectByName(name string) (*neo.Object, bool) {
	o, ok := db.byName[name]
	return o, ok
}

// ApproachesFor returns the linked approaches recorded for a designation,
// in time order. Unresolvable designations are included here even though
// they have no cataloged object.
func (db *Database) ApproachesFor(designation string) []*neo.CloseApproach {
	return db.approachesFor[designation]
}

// All returns a lazy sequence over every approach in stored time order.
func (db *Database) All() iter.Seq[*neo.CloseApproach] {
	return func(yield func(*neo.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !yield(ca) {
				return
			}
		}
	}
}

// Query returns a lazy sequence of the approaches matching every supplied
// filter, in stored time order. The sequence restarts from the beginning
// each time it is ranged over.
func (db *Database) Query(crit Criteria) iter.Seq[*neo.CloseApproach] {
	preds := crit.predicates()
	return func(yield func(*neo.CloseApproach) bool) {
		for _, ca := range db.approaches {
			if !matches(ca, preds) {
				continue
			}
			if !yield(ca) {
				return
			}
		}
	}
}

// Limit truncates a sequence to at most n leading elements, preserving
// order. n <= 0 means unbounded. No more than n elements are pulled from
// the upstream sequence.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		remaining := n
		for v := range seq {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// ObjectCount reports how many cataloged objects the database holds.
func (db *Database) ObjectCount() int {
	return len(db.byDesignation)
}

// ApproachCount reports how many approach records the database holds,
// including those linked to unknown-object placeholders.
func (db *Database) ApproachCount() int {
	return len(db.approaches)
}

// UnlinkedCount reports how many distinct designations resolved to no
// cataloged object during linking.
func (db *Database) UnlinkedCount() int {
	return len(db.unknown)
}
