package state

import (
	"strings"

	"github.com/five82/academia/internal/catalog"
)

// View identifies which grid the browser is showing.
type View int

const (
	ViewFeatured View = iota
	ViewSearching
	ViewResults
)

func (v View) String() string {
	switch v {
	case ViewSearching:
		return "searching"
	case ViewResults:
		return "results"
	default:
		return "featured"
	}
}

// Request describes a search the caller must perform after Submit.
type Request struct {
	Seq   uint64
	Query string
}

// Result carries a finished search back into the browser. Err is set when
// the search failed; Books is ignored in that case.
type Result struct {
	Seq   uint64
	Query string
	Books []catalog.Book
	Err   error
}

// Hooks lets the owner react to browser transitions.
type Hooks struct {
	// OnSearch runs after every search completes, failed or not.
	OnSearch func()
	// OnShowFeatured runs after the user returns to the featured list.
	OnShowFeatured func()
}

// Browser owns the search, results and detail state. All methods are meant
// to be called from a single goroutine.
type Browser struct {
	hooks Hooks

	query    string
	books    []catalog.Book
	loading  bool
	searched bool
	seq      uint64

	selected    catalog.Book
	modalOpen   bool
	descLoading bool
}

// NewBrowser returns a browser showing the featured list.
func NewBrowser(hooks Hooks) *Browser {
	return &Browser{
		hooks: hooks,
		books: catalog.Featured(),
	}
}

// Observe resets the browser to the featured list every time flag becomes
// true. The returned function stops observing.
func (b *Browser) Observe(flag *Flag) (cancel func()) {
	return flag.Subscribe(func(v bool) {
		if v {
			b.restoreFeatured()
		}
	})
}

func (b *Browser) restoreFeatured() {
	b.searched = false
	b.books = catalog.Featured()
	b.query = ""
}

// Query returns the text currently in the search field.
func (b *Browser) Query() string { return b.query }

// SetQuery mirrors the search field.
func (b *Browser) SetQuery(text string) { b.query = text }

// Books returns the displayed list.
func (b *Browser) Books() []catalog.Book { return b.books }

// Loading reports whether a search is in flight.
func (b *Browser) Loading() bool { return b.loading }

// Searched reports whether a search has been submitted since the last reset.
func (b *Browser) Searched() bool { return b.searched }

// Seq returns the number of the most recently submitted search.
func (b *Browser) Seq() uint64 { return b.seq }

// View reports which grid is visible.
func (b *Browser) View() View {
	switch {
	case !b.searched:
		return ViewFeatured
	case b.loading:
		return ViewSearching
	default:
		return ViewResults
	}
}

// Submit starts a search for the trimmed query. An empty query changes
// nothing and returns false.
func (b *Browser) Submit() (Request, bool) {
	q := strings.TrimSpace(b.query)
	if q == "" {
		return Request{}, false
	}
	b.seq++
	b.loading = true
	b.searched = true
	return Request{Seq: b.seq, Query: q}, true
}

// Resolve applies a finished search. The list is replaced wholesale, and a
// failed search leaves it empty. Results are applied in arrival order.
func (b *Browser) Resolve(r Result) {
	if r.Err != nil {
		b.books = nil
	} else {
		b.books = r.Books
	}
	b.loading = false
	b.searched = true
	if b.hooks.OnSearch != nil {
		b.hooks.OnSearch()
	}
}

// CanGoBack reports whether the back-to-featured action is offered.
func (b *Browser) CanGoBack() bool {
	return b.View() == ViewResults
}

// BackToFeatured clears the search and returns to the featured list.
func (b *Browser) BackToFeatured() bool {
	if !b.CanGoBack() {
		return false
	}
	b.restoreFeatured()
	if b.hooks.OnShowFeatured != nil {
		b.hooks.OnShowFeatured()
	}
	return true
}

// Open selects book and shows the detail modal. It returns true when the
// book's description must be fetched; the description is then loading until
// ApplyDescription or Close.
func (b *Browser) Open(book catalog.Book) bool {
	b.selected = book
	b.modalOpen = true
	b.descLoading = catalog.NeedsEnrichment(book)
	return b.descLoading
}

// ApplyDescription stores a fetched description on the selected book. It is
// ignored unless the modal still shows the book with that id.
func (b *Browser) ApplyDescription(id, text string) bool {
	if !b.modalOpen || b.selected.ID != id {
		return false
	}
	b.selected = b.selected.WithDescription(text)
	b.descLoading = false
	return true
}

// Close hides the modal and drops the selection.
func (b *Browser) Close() {
	b.selected = catalog.Book{}
	b.modalOpen = false
	b.descLoading = false
}

// ModalOpen reports whether the detail modal is visible.
func (b *Browser) ModalOpen() bool { return b.modalOpen }

// Selected returns the book shown in the modal.
func (b *Browser) Selected() (catalog.Book, bool) {
	return b.selected, b.modalOpen
}

// DescriptionLoading reports whether the selected book's description is
// being fetched.
func (b *Browser) DescriptionLoading() bool { return b.descLoading }
