package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOfVariants(t *testing.T) {
	printed := NewPrintedBook(1, "Dune", NewAuthor("Herbert"), 1965, "SciFi", 412)
	printed.Borrow()

	rec := RecordOf(printed)
	assert.Equal(t, KindPrinted, rec.Kind)
	assert.Equal(t, "Dune", rec.Title)
	assert.Equal(t, "Herbert", rec.Author)
	assert.Equal(t, 412, rec.Pages)
	assert.False(t, rec.Available)

	rec = RecordOf(NewAudioBook(2, "B", NewAuthor("A"), 2019, "Drama", 3.0))
	assert.Equal(t, KindAudio, rec.Kind)
	assert.Equal(t, 3.0, rec.DurationHours)
}

func TestBookFromRecordAssignsGivenID(t *testing.T) {
	rec := BookRecord{
		ID:    99, // informational only, must be ignored
		Kind:  KindEBook,
		Title: "Book2", Author: "Author2", Year: 2021, Genre: "Poetry",
		SizeMB: 2.5, Available: true,
	}

	b, err := BookFromRecord(rec, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, b.ID())
	assert.Equal(t, "[EBook] Book2 (2021), Author2, 2.5 MB, available", b.Describe())
}

func TestBookFromRecordBorrowedState(t *testing.T) {
	rec := BookRecord{Kind: KindPrinted, Title: "T", Author: "A", Year: 2000, Pages: 10, Available: false}
	b, err := BookFromRecord(rec, 1)
	require.NoError(t, err)
	assert.False(t, b.Available())
}

func TestBookFromRecordUnknownKind(t *testing.T) {
	_, err := BookFromRecord(BookRecord{Kind: "vinyl"}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown book kind")
}

func TestExportAndDecodeRoundTrip(t *testing.T) {
	var cat Catalog
	cat.AddBook(NewPrintedBook(1, "Book1", NewAuthor("Author1"), 2020, "History", 200))
	cat.AddBook(NewAudioBook(2, "Book3", NewAuthor("Author3"), 2019, "Drama", 3.0))
	require.True(t, cat.FindByID(2).Borrow())

	data, err := ExportCatalog(&cat)
	require.NoError(t, err)

	records, err := DecodeBookRecords(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, KindPrinted, records[0].Kind)
	assert.True(t, records[0].Available)
	assert.Equal(t, KindAudio, records[1].Kind)
	assert.False(t, records[1].Available)
}
