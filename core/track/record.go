package track

// Origin identifies which collection a record or raw path came from.
type Origin int

const (
	// OriginTag marks records loaded from the beets tag database.
	OriginTag Origin = iota

	// OriginExport marks records parsed from a rekordbox XML export.
	OriginExport
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	if o == OriginExport {
		return "export"
	}
	return "tag"
}

// Record is an ordered mapping from field name to value for a single
// track, together with the raw path it was loaded with and the normalized
// key derived from it. Values are held as loaded; a field that is absent
// from the mapping is distinct from a field holding a zero value.
type Record struct {
	origin Origin
	path   string
	key    string

	names  []string
	values map[string]any
}

// New creates an empty record for the given raw path. The normalized key
// is derived immediately; a path that cannot be normalized is rejected
// here so malformed records never enter a collection.
func New(origin Origin, rawPath string) (*Record, error) {
	key, err := NormalizeKey(rawPath, origin)
	if err != nil {
		return nil, err
	}
	return &Record{
		origin: origin,
		path:   rawPath,
		key:    key,
		values: make(map[string]any),
	}, nil
}

// Origin returns the collection this record was loaded from.
func (r *Record) Origin() Origin { return r.origin }

// Path returns the raw, unnormalized path the record was loaded with.
func (r *Record) Path() string { return r.path }

// Key returns the normalized path key used for matching.
func (r *Record) Key() string { return r.key }

// Set stores a field value, preserving first-insertion order. Setting an
// existing name replaces the value in place.
func (r *Record) Set(name string, value any) {
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns a field value and whether the field is present.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in insertion order. The returned slice is
// a copy and safe to retain.
func (r *Record) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of fields present.
func (r *Record) Len() int { return len(r.names) }

// Clone returns an independent copy of the record. Sync stages writes
// onto clones so the caller's input records are never mutated.
func (r *Record) Clone() *Record {
	c := &Record{
		origin: r.origin,
		path:   r.path,
		key:    r.key,
		names:  make([]string, len(r.names)),
		values: make(map[string]any, len(r.values)),
	}
	copy(c.names, r.names)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}
