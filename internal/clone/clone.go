// Package clone holds the defensive map copy shared by the error context and
// the attribute bag.
package clone

// Map returns a copy of in. Nested map[string]any values are copied too, so
// the result shares no map with in. Empty input yields nil.
func Map(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = Map(mv)
			continue
		}

		out[k] = v
	}

	return out
}
