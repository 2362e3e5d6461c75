package registry

// CodeGroups returns one group per registered type, in active-code
// registration order. Each group lists the type's active code first,
// followed by its legacy codes in registration order.
//
// A nil predicate matches every type. Subtype-style filtering is expressed
// as a predicate because descriptor identity is opaque to the registry; for
// Registry[reflect.Type] the SubtypesOf helper builds one.
func (r *Registry[T]) CodeGroups(where func(T) bool) [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var groups [][]string
	for _, code := range r.activeOrder {
		v := r.active[code]
		if where != nil && !where(v) {
			continue
		}
		// Cannot miss: every code in activeOrder has an active entry.
		codes, _ := r.allCodesLocked(v)
		groups = append(groups, codes)
	}
	return groups
}
