package state

// Shell is the application frame around the browser. It owns the "show
// featured" flag that the browser observes.
type Shell struct {
	featured *Flag
	browser  *Browser
}

// NewShell wires a browser to a fresh featured flag, initially true.
func NewShell() *Shell {
	s := &Shell{featured: NewFlag(true)}
	s.browser = NewBrowser(Hooks{
		OnSearch:       func() { s.featured.Set(false) },
		OnShowFeatured: func() { s.featured.Set(true) },
	})
	s.browser.Observe(s.featured)
	return s
}

// Browser returns the owned browser.
func (s *Shell) Browser() *Browser { return s.browser }

// ShowFeatured reports the current value of the featured flag.
func (s *Shell) ShowFeatured() bool { return s.featured.Get() }

// Featured exposes the flag for additional observers.
func (s *Shell) Featured() *Flag { return s.featured }

// Home is the brand and Home link action.
func (s *Shell) Home() {
	s.featured.Set(true)
}
