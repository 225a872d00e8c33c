package datatable

// Selection is a set of row identifiers.
type Selection struct {
	keys map[any]struct{}
}

// NewSelection returns a selection holding keys.
func NewSelection(keys ...any) Selection {
	s := Selection{keys: make(map[any]struct{}, len(keys))}
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s Selection) Has(k any) bool {
	if !validKey(k) {
		return false
	}
	_, ok := s.keys[k]
	return ok
}

func (s Selection) Len() int { return len(s.keys) }

func (s *Selection) Add(k any) {
	if !validKey(k) {
		return
	}
	if s.keys == nil {
		s.keys = make(map[any]struct{})
	}
	s.keys[k] = struct{}{}
}

func (s *Selection) Remove(k any) {
	if !validKey(k) {
		return
	}
	delete(s.keys, k)
}

// Toggle adds k when absent and removes it otherwise. It reports whether
// k is selected afterwards.
func (s *Selection) Toggle(k any) bool {
	if s.Has(k) {
		s.Remove(k)
		return false
	}
	s.Add(k)
	return s.Has(k)
}

func (s *Selection) Clear() {
	s.keys = make(map[any]struct{})
}

// Keys returns the identifiers in no particular order.
func (s Selection) Keys() []any {
	out := make([]any, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	return out
}

// retain drops every identifier not in keep and reports how many went.
func (s *Selection) retain(keep map[any]struct{}) int {
	dropped := 0
	for k := range s.keys {
		if _, ok := keep[k]; !ok {
			delete(s.keys, k)
			dropped++
		}
	}
	return dropped
}
