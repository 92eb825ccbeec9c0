package state

// Flag is an observable boolean. Subscribers run synchronously, in
// registration order, whenever Set changes the value.
//
// Flag is not safe for concurrent use; it lives on the UI event loop.
type Flag struct {
	value  bool
	nextID int
	subs   []subscription
}

type subscription struct {
	id int
	fn func(bool)
}

// NewFlag returns a Flag holding initial.
func NewFlag(initial bool) *Flag {
	return &Flag{value: initial}
}

// Get returns the current value.
func (f *Flag) Get() bool {
	return f.value
}

// Set stores v and notifies subscribers if the value changed. It reports
// whether a change happened.
func (f *Flag) Set(v bool) bool {
	if f.value == v {
		return false
	}
	f.value = v
	subs := append([]subscription(nil), f.subs...)
	for _, s := range subs {
		s.fn(v)
	}
	return true
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (f *Flag) Subscribe(fn func(bool)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription{id: id, fn: fn})
	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}
