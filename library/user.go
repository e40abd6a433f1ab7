package library

import "fmt"

// studentBorrowLimit is the fixed number of books a student may hold.
const studentBorrowLimit = 5

// User is the common contract of registered library users. The variant
// set is closed: Student and Librarian.
type User interface {
	Name() string
	BorrowedCount() int

	// CanBorrow applies the variant's eligibility policy.
	CanBorrow() bool
	// RecordBorrow bumps the borrow count. It does not re-check
	// eligibility; callers are expected to consult CanBorrow first.
	RecordBorrow()
	// RecordReturn drops the borrow count, clamped at zero.
	RecordReturn()

	// Describe renders the one-line summary used by user listings.
	Describe() string
}

type userCore struct {
	name     string
	borrowed int
}

func (u *userCore) Name() string       { return u.name }
func (u *userCore) BorrowedCount() int { return u.borrowed }
func (u *userCore) RecordBorrow()      { u.borrowed++ }

func (u *userCore) RecordReturn() {
	if u.borrowed > 0 {
		u.borrowed--
	}
}

// ------------------ Student ------------------

// Student may borrow up to five books at a time.
type Student struct {
	userCore
	faculty     string
	yearOfStudy int
}

// NewStudent builds a student with a zero borrow count.
func NewStudent(name, faculty string, yearOfStudy int) *Student {
	return &Student{userCore: userCore{name: name}, faculty: faculty, yearOfStudy: yearOfStudy}
}

// Faculty returns the student's faculty.
func (s *Student) Faculty() string { return s.faculty }

// YearOfStudy returns the student's year of study.
func (s *Student) YearOfStudy() int { return s.yearOfStudy }

func (s *Student) CanBorrow() bool { return s.borrowed < studentBorrowLimit }

func (s *Student) Describe() string {
	return fmt.Sprintf("%s - Student, %s, year %d", s.name, s.faculty, s.yearOfStudy)
}

// ------------------ Librarian ------------------

// Librarian is staff and may always borrow.
type Librarian struct {
	userCore
	employeeID string
}

// NewLibrarian builds a librarian with a zero borrow count.
func NewLibrarian(name, employeeID string) *Librarian {
	return &Librarian{userCore: userCore{name: name}, employeeID: employeeID}
}

// EmployeeID returns the librarian's staff id.
func (l *Librarian) EmployeeID() string { return l.employeeID }

func (l *Librarian) CanBorrow() bool { return true }

func (l *Librarian) Describe() string {
	return fmt.Sprintf("%s - Librarian, ID: %s", l.name, l.employeeID)
}
