package payload

// Filter is a set of accepted payload kinds. A nil *Filter is the unset
// state and accepts everything; a non-nil Filter with no kinds accepts
// nothing. The two are deliberately distinct states.
type Filter struct {
	kinds map[Kind]struct{}
}

// AllTypes returns the unset filter: every payload kind is accepted.
func AllTypes() *Filter { return nil }

// Types returns a filter accepting exactly the given kinds. With no
// arguments the filter accepts nothing.
func Types(kinds ...Kind) *Filter {
	f := &Filter{kinds: make(map[Kind]struct{}, len(kinds))}
	for _, k := range kinds {
		f.kinds[k] = struct{}{}
	}
	return f
}

// Accepts reports whether payloads of kind k pass the filter.
func (f *Filter) Accepts(k Kind) bool {
	if f == nil {
		return true
	}
	_, ok := f.kinds[k]
	return ok
}
