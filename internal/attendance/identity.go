package attendance

import (
	"strings"

	"github.com/hagwonhq/hagwon-api/internal/models"
)

// UnassignedClassName is the bucket for fact rows whose class cannot be
// resolved by id or by name. Routing them here instead of dropping them keeps
// data-quality problems visible in aggregates.
const UnassignedClassName = "Unassigned"

// ClassKey is the canonical identity of a class group. ID is zero for the
// Unassigned bucket.
type ClassKey struct {
	ID   uint
	Name string
}

// ClassIndex provides the bidirectional lookups needed to join facts that are
// keyed inconsistently by class id or, on legacy rows, only by class name.
// Display names are not unique, so a name can map to several classes; each is
// tracked independently and name-based resolution deterministically picks the
// first in input order.
type ClassIndex struct {
	classes  []models.Class
	nameByID map[uint]string
	byName   map[string][]models.Class
}

// NewClassIndex builds an index over the given class offerings.
func NewClassIndex(classes []models.Class) *ClassIndex {
	index := &ClassIndex{
		classes:  classes,
		nameByID: make(map[uint]string, len(classes)),
		byName:   make(map[string][]models.Class),
	}
	for _, class := range classes {
		index.nameByID[class.ID] = class.Name
		name := strings.TrimSpace(class.Name)
		if name != "" {
			index.byName[name] = append(index.byName[name], class)
		}
	}
	return index
}

// Classes returns the indexed offerings in input order.
func (ix *ClassIndex) Classes() []models.Class {
	return ix.classes
}

// Name looks up the display name for a class id.
func (ix *ClassIndex) Name(id uint) (string, bool) {
	name, ok := ix.nameByID[id]
	return name, ok
}

// ByName returns every class sharing the given display name.
func (ix *ClassIndex) ByName(name string) []models.Class {
	return ix.byName[strings.TrimSpace(name)]
}

// Resolve maps an (id, name) pair from a fact row to its canonical class
// group. The id is authoritative when it matches a known class; the name is
// only consulted when the id is absent or unmatched. Rows where neither key
// resolves land in the Unassigned bucket, so every input ends up in exactly
// one group and none is silently dropped.
func (ix *ClassIndex) Resolve(id *uint, name string) Resolved[ClassKey] {
	if id != nil && *id != 0 {
		if resolved, ok := ix.nameByID[*id]; ok {
			return ResolvePrimary(ClassKey{ID: *id, Name: resolved})
		}
	}

	if candidates := ix.ByName(name); len(candidates) > 0 {
		return ResolveFallback(ClassKey{ID: candidates[0].ID, Name: candidates[0].Name})
	}

	return ResolveDefault(ClassKey{Name: UnassignedClassName})
}
