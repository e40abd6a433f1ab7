package library

// Library owns one Catalog and the registered users, and hands out book
// ids. Ids start at 1, only ever grow, and are never reused; there is no
// removal operation that could free one.
type Library struct {
	catalog    Catalog
	users      []User
	nextBookID int
}

// NewLibrary returns an empty library whose first issued book id is 1.
func NewLibrary() *Library {
	return &Library{nextBookID: 1}
}

// Catalog exposes the library's catalog.
func (l *Library) Catalog() *Catalog { return &l.catalog }

// IssueNextBookID returns the next free book id and advances the counter.
func (l *Library) IssueNextBookID() int {
	id := l.nextBookID
	l.nextBookID++
	return id
}

// AddStudent registers a student and returns the stored instance.
func (l *Library) AddStudent(name, faculty string, yearOfStudy int) *Student {
	s := NewStudent(name, faculty, yearOfStudy)
	l.users = append(l.users, s)
	return s
}

// AddLibrarian registers a librarian and returns the stored instance.
func (l *Library) AddLibrarian(name, employeeID string) *Librarian {
	lb := NewLibrarian(name, employeeID)
	l.users = append(l.users, lb)
	return lb
}

// ListUsers returns the Describe output of every user in registration
// order.
func (l *Library) ListUsers() []string {
	lines := make([]string, 0, len(l.users))
	for _, u := range l.users {
		lines = append(lines, u.Describe())
	}
	return lines
}

// UserCount returns the number of registered users.
func (l *Library) UserCount() int { return len(l.users) }
