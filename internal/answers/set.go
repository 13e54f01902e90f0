package answers

// Set maps answer keys to answers. A key is present only once the respondent
// has answered the corresponding question; absence means "unanswered", which
// is distinct from an empty string.
type Set map[string]Answer

// NewSet returns an empty answer set.
func NewSet() Set {
	return make(Set)
}

// Put stores (or overwrites) the answer for key.
func (s Set) Put(key string, a Answer) {
	s[key] = a
}

// Get returns the answer for key and whether it exists.
func (s Set) Get(key string) (Answer, bool) {
	a, ok := s[key]
	return a, ok
}

// Display resolves the answer for key to its canonical string.
// Missing keys resolve to "".
func (s Set) Display(key string) string {
	a, ok := s[key]
	if !ok {
		return ""
	}
	return a.Display()
}

// Clone returns a shallow copy. Answers are immutable values, so a shallow
// copy is a full snapshot.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
