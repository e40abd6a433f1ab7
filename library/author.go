package library

// Author is an immutable display name for a book's author. Books hold
// their Author by value, so two books never share one.
type Author struct {
	name string
}

// NewAuthor builds an Author with the given display name.
func NewAuthor(name string) Author {
	return Author{name: name}
}

// Name returns the author's display name.
func (a Author) Name() string { return a.name }
