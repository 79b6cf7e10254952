package agent

// ContextStore is agent-local scratch state: arbitrary keys to arbitrary
// values, no expiry and no size cap, for the life of the process. Access
// runs under the owning agent's lock.
type ContextStore struct {
	values map[string]any
}

func NewContextStore() *ContextStore {
	return &ContextStore{values: make(map[string]any)}
}

func (s *ContextStore) Set(key string, value any) {
	s.values[key] = value
}

func (s *ContextStore) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *ContextStore) Len() int {
	return len(s.values)
}

func (s *ContextStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
