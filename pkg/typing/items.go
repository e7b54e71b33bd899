package typing

// FieldGroup holds every sampled value of one field.
type FieldGroup struct {
	Key      string
	Values   []any
	Optional bool
}

// GroupFields groups the object samples by field name. Fields are returned
// in first-occurrence order and their values in sample order. Samples that
// are not objects are skipped and do not count towards optionality: a field
// is optional when it is missing from at least one object sample.
//
// Presence is a key test: a field holding null is present.
func GroupFields(samples []any) []FieldGroup {
	var groups []FieldGroup
	index := make(map[string]int)
	objects := 0
	for _, s := range samples {
		obj, ok := asMap(s)
		if !ok {
			continue
		}
		objects++
		for k, v := range obj.All() {
			i, seen := index[k]
			if !seen {
				i = len(groups)
				index[k] = i
				groups = append(groups, FieldGroup{Key: k})
			}
			groups[i].Values = append(groups[i].Values, v)
		}
	}

	for i := range groups {
		groups[i].Optional = len(groups[i].Values) < objects
	}
	return groups
}
