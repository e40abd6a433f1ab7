package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentBorrowLimit(t *testing.T) {
	s := NewStudent("Ana", "CS", 2)

	for i := 0; i < 5; i++ {
		require.True(t, s.CanBorrow(), "should be eligible at count %d", i)
		s.RecordBorrow()
	}
	assert.Equal(t, 5, s.BorrowedCount())
	assert.False(t, s.CanBorrow(), "not eligible at the limit")

	s.RecordReturn()
	assert.True(t, s.CanBorrow(), "eligible again after one return")
}

func TestStudentLimitRegardlessOfHowCountWasReached(t *testing.T) {
	s := NewStudent("Bo", "Math", 1)

	// RecordBorrow does not validate; the count can pass the limit.
	for i := 0; i < 7; i++ {
		s.RecordBorrow()
	}
	assert.Equal(t, 7, s.BorrowedCount())
	assert.False(t, s.CanBorrow())
}

func TestRecordReturnClampsAtZero(t *testing.T) {
	s := NewStudent("Ana", "CS", 2)
	s.RecordReturn()
	assert.Equal(t, 0, s.BorrowedCount())

	l := NewLibrarian("Ira", "L-7")
	l.RecordReturn()
	assert.Equal(t, 0, l.BorrowedCount())
}

func TestLibrarianAlwaysEligible(t *testing.T) {
	l := NewLibrarian("Ira", "L-7")
	assert.True(t, l.CanBorrow())

	for i := 0; i < 100; i++ {
		l.RecordBorrow()
	}
	assert.Equal(t, 100, l.BorrowedCount())
	assert.True(t, l.CanBorrow())
}

func TestUserDescribe(t *testing.T) {
	var s User = NewStudent("Ana", "CS", 2)
	var l User = NewLibrarian("Ira", "L-7")

	assert.Equal(t, "Ana - Student, CS, year 2", s.Describe())
	assert.Equal(t, "Ira - Librarian, ID: L-7", l.Describe())
}
