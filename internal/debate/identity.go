package debate

// Identity is the client-supplied token that deduplicates answers,
// suggestions and votes. It is not an authentication mechanism: the transport
// passes it through unchanged and the core only ever compares it for
// equality.
type Identity string

// IdentitySet enforces "at most once per identity". It is not locked
// internally; the owning Debate serializes access.
type IdentitySet struct {
	members map[Identity]struct{}
}

// NewIdentitySet creates a set pre-seeded with the given identities.
func NewIdentitySet(seed ...Identity) *IdentitySet {
	s := &IdentitySet{members: make(map[Identity]struct{}, len(seed))}
	for _, id := range seed {
		s.members[id] = struct{}{}
	}
	return s
}

// Contains reports whether the identity is already in the set.
func (s *IdentitySet) Contains(id Identity) bool {
	_, ok := s.members[id]
	return ok
}

// AddOnce adds the identity and returns true, or returns false if it was
// already present. The check and the insert are a single step so callers
// never need a separate Contains.
func (s *IdentitySet) AddOnce(id Identity) bool {
	if _, ok := s.members[id]; ok {
		return false
	}
	s.members[id] = struct{}{}
	return true
}

// Len returns the number of identities in the set.
func (s *IdentitySet) Len() int {
	return len(s.members)
}
