package library

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Book kind tags used in exported records.
const (
	KindPrinted = "printed"
	KindEBook   = "ebook"
	KindAudio   = "audio"
)

// BookRecord is the flat JSON shape of a catalog entry, used by the CLI
// export and import commands. Exactly one of the measurement fields is
// meaningful, selected by Kind.
type BookRecord struct {
	ID            int     `json:"id"`
	Kind          string  `json:"kind"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Year          int     `json:"year"`
	Genre         string  `json:"genre"`
	Pages         int     `json:"pages,omitempty"`
	SizeMB        float64 `json:"size_mb,omitempty"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	Available     bool    `json:"available"`
}

// RecordOf flattens a stored book into its exportable record.
func RecordOf(b Book) BookRecord {
	rec := BookRecord{
		ID:        b.ID(),
		Title:     b.Title(),
		Author:    b.Author().Name(),
		Year:      b.Year(),
		Genre:     b.Genre(),
		Available: b.Available(),
	}
	switch v := b.(type) {
	case *PrintedBook:
		rec.Kind = KindPrinted
		rec.Pages = v.Pages()
	case *EBook:
		rec.Kind = KindEBook
		rec.SizeMB = v.SizeMB()
	case *AudioBook:
		rec.Kind = KindAudio
		rec.DurationHours = v.DurationHours()
	}
	return rec
}

// BookFromRecord builds a book from rec under the given id. The record's
// own id is informational only; ids are always issued by the Library.
// A book recorded as borrowed comes back borrowed.
func BookFromRecord(rec BookRecord, id int) (Book, error) {
	var b Book
	switch rec.Kind {
	case KindPrinted:
		b = NewPrintedBook(id, rec.Title, NewAuthor(rec.Author), rec.Year, rec.Genre, rec.Pages)
	case KindEBook:
		b = NewEBook(id, rec.Title, NewAuthor(rec.Author), rec.Year, rec.Genre, rec.SizeMB)
	case KindAudio:
		b = NewAudioBook(id, rec.Title, NewAuthor(rec.Author), rec.Year, rec.Genre, rec.DurationHours)
	default:
		return nil, fmt.Errorf("unknown book kind %q", rec.Kind)
	}
	if !rec.Available {
		b.Borrow()
	}
	return b, nil
}

// ExportCatalog renders every stored book as an indented JSON array.
func ExportCatalog(c *Catalog) ([]byte, error) {
	records := make([]BookRecord, 0, c.Len())
	for _, b := range c.books {
		records = append(records, RecordOf(b))
	}
	data, err := jsoniter.ConfigFastest.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

// DecodeBookRecords parses a JSON array of book records.
func DecodeBookRecords(data []byte) ([]BookRecord, error) {
	var records []BookRecord
	if err := jsoniter.ConfigFastest.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode book records: %w", err)
	}
	return records, nil
}
