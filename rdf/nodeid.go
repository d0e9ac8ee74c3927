package rdf

// nodeIDRegistry tracks rdf:ID values already claimed within a document,
// enforcing uniqueness unless disabled. It is owned exclusively by one
// decoder and monotonically grows; entries are never removed.
type nodeIDRegistry struct {
	seen            map[string]bool
	allowDuplicates bool
}

func newNodeIDRegistry(allowDuplicates bool) *nodeIDRegistry {
	return &nodeIDRegistry{seen: map[string]bool{}, allowDuplicates: allowDuplicates}
}

// claim records id as used, returning an error if it was already claimed
// and duplicates are not allowed.
func (r *nodeIDRegistry) claim(id string) error {
	if r.seen[id] {
		if r.allowDuplicates {
			return nil
		}
		return errDuplicateID(id)
	}
	r.seen[id] = true
	return nil
}
