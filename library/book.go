package library

import "fmt"

// Book is the common contract of all catalog entries. The variant set is
// closed: PrintedBook, EBook and AudioBook.
type Book interface {
	ID() int
	Title() string
	Author() Author
	Year() int
	Genre() string
	Available() bool

	// Borrow marks the book as taken. It reports false, and changes
	// nothing, when the book is already borrowed.
	Borrow() bool
	// Return marks the book as available again. Returning an already
	// available book is a no-op.
	Return()

	// Describe renders the one-line summary used by catalog listings.
	Describe() string
	// Clone returns an independently owned copy. Mutating either side
	// afterwards never affects the other.
	Clone() Book
}

// bookCore carries the attributes and behavior shared by every variant.
type bookCore struct {
	id        int
	title     string
	author    Author
	year      int
	genre     string
	available bool
}

func newBookCore(id int, title string, author Author, year int, genre string) bookCore {
	return bookCore{
		id:        id,
		title:     title,
		author:    author,
		year:      year,
		genre:     genre,
		available: true,
	}
}

func (b *bookCore) ID() int         { return b.id }
func (b *bookCore) Title() string   { return b.title }
func (b *bookCore) Author() Author  { return b.author }
func (b *bookCore) Year() int       { return b.year }
func (b *bookCore) Genre() string   { return b.genre }
func (b *bookCore) Available() bool { return b.available }

func (b *bookCore) Borrow() bool {
	if !b.available {
		return false
	}
	b.available = false
	return true
}

func (b *bookCore) Return() { b.available = true }

// status is the trailing availability word in Describe output.
func (b *bookCore) status() string {
	if b.available {
		return "available"
	}
	return "borrowed"
}

// ------------------ Printed ------------------

// PrintedBook is a physical book with a page count.
type PrintedBook struct {
	bookCore
	pages int
}

// NewPrintedBook builds a printed book; it starts out available.
func NewPrintedBook(id int, title string, author Author, year int, genre string, pages int) *PrintedBook {
	return &PrintedBook{bookCore: newBookCore(id, title, author, year, genre), pages: pages}
}

// Pages returns the page count.
func (b *PrintedBook) Pages() int { return b.pages }

func (b *PrintedBook) Describe() string {
	return fmt.Sprintf("[Printed] %s (%d), %s, %d pages, %s",
		b.title, b.year, b.author.Name(), b.pages, b.status())
}

func (b *PrintedBook) Clone() Book {
	clone := *b
	return &clone
}

// ------------------ EBook ------------------

// EBook is an electronic book with a download size in megabytes.
type EBook struct {
	bookCore
	sizeMB float64
}

// NewEBook builds an ebook; it starts out available.
func NewEBook(id int, title string, author Author, year int, genre string, sizeMB float64) *EBook {
	return &EBook{bookCore: newBookCore(id, title, author, year, genre), sizeMB: sizeMB}
}

// SizeMB returns the download size in megabytes.
func (b *EBook) SizeMB() float64 { return b.sizeMB }

func (b *EBook) Describe() string {
	return fmt.Sprintf("[EBook] %s (%d), %s, %.1f MB, %s",
		b.title, b.year, b.author.Name(), b.sizeMB, b.status())
}

func (b *EBook) Clone() Book {
	clone := *b
	return &clone
}

// ------------------ Audio ------------------

// AudioBook is a narrated book with a running time in hours.
type AudioBook struct {
	bookCore
	durationHours float64
}

// NewAudioBook builds an audiobook; it starts out available.
func NewAudioBook(id int, title string, author Author, year int, genre string, durationHours float64) *AudioBook {
	return &AudioBook{bookCore: newBookCore(id, title, author, year, genre), durationHours: durationHours}
}

// DurationHours returns the running time in hours.
func (b *AudioBook) DurationHours() float64 { return b.durationHours }

func (b *AudioBook) Describe() string {
	return fmt.Sprintf("[Audio] %s (%d), %s, %.1f hours, %s",
		b.title, b.year, b.author.Name(), b.durationHours, b.status())
}

func (b *AudioBook) Clone() Book {
	clone := *b
	return &clone
}
