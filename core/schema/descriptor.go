package schema

// Ownership designates which collection is the source of truth for a
// field. Writes flow only from the authoritative side to the other:
// sync writes export-authoritative fields into beets, export writes
// tag-authoritative fields into the XML document.
type Ownership int

const (
	// TagAuthoritative fields are owned by the beets database.
	TagAuthoritative Ownership = iota

	// ExportAuthoritative fields are owned by the rekordbox export.
	ExportAuthoritative
)

// Direction selects which conversion a Convert call applies. Both
// directions are always defined where both field names exist; ownership
// restricts writes, not conversion availability, so inspection tooling
// can render either side's value in the other's terms.
type Direction int

const (
	// ToExport converts a beets value into the rekordbox representation.
	ToExport Direction = iota

	// ToTag converts a rekordbox value into the beets representation.
	ToTag
)

// ConvertFunc transforms a single field value across the schema boundary.
type ConvertFunc func(value any) (any, error)

// Descriptor describes one reconciled field: its name on each side,
// ownership, nullability, and the conversion pair. A descriptor with only
// one side's name populated describes a field not yet captured on the
// other side; it is excluded from sync/export in the direction that lacks
// a name.
type Descriptor struct {
	// TagName is the beets field name; empty if not captured in beets.
	TagName string

	// ExportName is the rekordbox attribute name; empty if not exported.
	ExportName string

	// Owner is the side whose value wins.
	Owner Ownership

	// Nullable marks a field that may legitimately be absent. An absent
	// value on a nullable field propagates as absent unless Default is
	// set; an absent value on a non-nullable field with no Default is a
	// NullabilityError.
	Nullable bool

	// Default, when non-nil, is the destination-side sentinel written
	// when the source value is absent (e.g. rating 0).
	Default any

	// ToExport and ToTag are the conversion pair. Either may be nil when
	// the corresponding side has no name.
	ToExport ConvertFunc
	ToTag    ConvertFunc
}

// Registry is an immutable set of field descriptors, defined once at
// process start. Safe for concurrent readers.
type Registry struct {
	descs []Descriptor
	byTag map[string]int
}

// NewRegistry builds a registry from a fixed descriptor table.
func NewRegistry(descs []Descriptor) *Registry {
	r := &Registry{
		descs: descs,
		byTag: make(map[string]int, len(descs)),
	}
	for i, d := range descs {
		if d.TagName != "" {
			r.byTag[d.TagName] = i
		}
	}
	return r
}

// Descriptors returns the descriptor table in definition order. The
// returned slice is a copy.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.descs))
	copy(out, r.descs)
	return out
}

// ByTagName looks a descriptor up by its beets field name.
func (r *Registry) ByTagName(name string) (Descriptor, bool) {
	i, ok := r.byTag[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.descs[i], true
}

// Convert applies a descriptor's conversion to a field value. The present
// flag distinguishes a genuinely absent source value from a zero one; the
// returned flag reports whether the destination receives a value at all.
//
// Absent handling: Default (if set) is emitted as-is in destination
// terms; otherwise a nullable field stays absent and a non-nullable one
// fails with NullabilityError.
func Convert(d Descriptor, value any, present bool, dir Direction) (any, bool, error) {
	if !present {
		if d.Default != nil {
			return d.Default, true, nil
		}
		if d.Nullable {
			return nil, false, nil
		}
		name := d.TagName
		if dir == ToExport {
			name = d.ExportName
		}
		return nil, false, &NullabilityError{Field: name}
	}

	fn := d.ToTag
	if dir == ToExport {
		fn = d.ToExport
	}
	if fn == nil {
		// One-sided descriptor: nothing to convert toward.
		return nil, false, nil
	}

	out, err := fn(value)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
