package keyup

// Binding pairs a key identifier with the action it triggers.
// Key is compared to the event key exactly (case-sensitive).
type Binding struct {
	Key string
	Fn  func()
}

// Validate checks that every binding has a key identifier and an action.
// An empty slice is valid.
func Validate(bindings []Binding) error {
	for i, b := range bindings {
		if b.Key == "" {
			return &BindingError{Index: i, Key: b.Key, Err: ErrEmptyKey}
		}
		if b.Fn == nil {
			return &BindingError{Index: i, Key: b.Key, Err: ErrNilAction}
		}
	}
	return nil
}

// match returns the first binding whose key equals key.
func match(bindings []Binding, key string) (int, bool) {
	for i := range bindings {
		if bindings[i].Key == key {
			return i, true
		}
	}
	return -1, false
}
