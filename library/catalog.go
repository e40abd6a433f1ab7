package library

// Catalog owns an ordered collection of books. Insertion order is display
// order. Every entry is an independent clone, never an alias of a value
// the caller still holds.
type Catalog struct {
	books []Book
}

// AddBook stores an owned clone of b. Duplicate titles or ids are not
// rejected here; id uniqueness is the Library's concern.
func (c *Catalog) AddBook(b Book) {
	c.books = append(c.books, b.Clone())
}

// ListAll returns the Describe output of every book in insertion order.
func (c *Catalog) ListAll() []string {
	lines := make([]string, 0, len(c.books))
	for _, b := range c.books {
		lines = append(lines, b.Describe())
	}
	return lines
}

// Search returns the stored books matching pred, in insertion order. The
// returned entries are the catalog's own books, so callers may borrow or
// return them in place.
func (c *Catalog) Search(pred func(Book) bool) []Book {
	var result []Book
	for _, b := range c.books {
		if pred(b) {
			result = append(result, b)
		}
	}
	return result
}

// FindByID returns the stored book with the given id, or nil.
func (c *Catalog) FindByID(id int) Book {
	for _, b := range c.books {
		if b.ID() == id {
			return b
		}
	}
	return nil
}

// Len returns the number of stored books.
func (c *Catalog) Len() int { return len(c.books) }
