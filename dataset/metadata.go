package dataset

// PhysicalQuantity is a numeric value together with its unit.
type PhysicalQuantity struct {
	Value float64
	Unit  string
}

// Metadata holds instrument, sample, and measurement parameters as a nested
// category -> field -> value mapping. Values are either PhysicalQuantity,
// plain scalars/strings, or nested maps.
//
// Metadata is populated by the importer and treated as read-only by
// processing and analysis steps.
type Metadata map[string]map[string]any

// Set stores a value under category/field, creating the category as needed.
func (m Metadata) Set(category, field string, value any) {
	if m[category] == nil {
		m[category] = make(map[string]any)
	}

	m[category][field] = value
}

// Get returns the value stored under category/field.
func (m Metadata) Get(category, field string) (any, bool) {
	fields, ok := m[category]
	if !ok {
		return nil, false
	}

	v, ok := fields[field]

	return v, ok
}

// Quantity returns the PhysicalQuantity stored under category/field.
func (m Metadata) Quantity(category, field string) (PhysicalQuantity, bool) {
	v, ok := m.Get(category, field)
	if !ok {
		return PhysicalQuantity{}, false
	}

	q, ok := v.(PhysicalQuantity)

	return q, ok
}

// Clone returns a deep copy of the top two mapping levels. Nested values are
// copied by reference; importers are expected to store immutable values.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}

	out := make(Metadata, len(m))
	for category, fields := range m {
		cp := make(map[string]any, len(fields))
		for k, v := range fields {
			cp[k] = v
		}

		out[category] = cp
	}

	return out
}
