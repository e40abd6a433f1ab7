package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"library-catalog/configs"
	"library-catalog/library"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var noSeed bool

var rootCmd = &cobra.Command{
	Use:   "library-catalog",
	Short: "Interactive in-memory library catalog",
	Long: "An interactive menu over an in-memory library catalog of printed books,\n" +
		"ebooks and audiobooks, with registered students and librarians.\n" +
		"All data lives in the process and is gone on exit.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configs.LoadConfig()
		if noSeed {
			cfg.SeedDemoData = false
		}
		runMenu(cfg)
	},
}

func main() {
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "start with an empty catalog instead of the sample books")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// interactive is false when stdin is piped; prompts and the banner are
// suppressed then so scripted input produces clean output.
var interactive = term.IsTerminal(int(syscall.Stdin))

func runMenu(cfg configs.Config) {
	lib := library.NewLibrary()
	if cfg.SeedDemoData {
		seedDemoBooks(lib)
	}

	scanner := bufio.NewScanner(os.Stdin)

	if interactive {
		fmt.Println("Welcome to the Library Catalog!")
		fmt.Println("Available commands:")
		fmt.Println("  Books: add book, list books, borrow, return, search")
		fmt.Println("  Users: add student, add librarian, list users")
		fmt.Println("  Data:  export, import")
		fmt.Println("  System: exit")
	}

	for {
		if interactive {
			fmt.Print("\n> ")
		}
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, lib)
		case "list books":
			handleListBooks(lib)
		case "borrow":
			handleBorrow(scanner, lib)
		case "return":
			handleReturn(scanner, lib)
		case "search":
			handleSearch(scanner, lib)
		case "add student":
			handleAddStudent(scanner, lib)
		case "add librarian":
			handleAddLibrarian(scanner, lib)
		case "list users":
			handleListUsers(lib)
		case "export":
			handleExport(lib)
		case "import":
			handleImport(scanner, lib)
		case "exit":
			fmt.Println("Goodbye!")
			return
		case "":
			// blank line, re-prompt
		default:
			fmt.Println("Unknown command. Type one of the available commands listed above.")
		}
	}
}

// seedDemoBooks fills the catalog with the three sample books the demo
// traditionally starts with.
func seedDemoBooks(lib *library.Library) {
	cat := lib.Catalog()
	cat.AddBook(library.NewPrintedBook(lib.IssueNextBookID(), "Book1", library.NewAuthor("Author1"), 2020, "History", 200))
	cat.AddBook(library.NewEBook(lib.IssueNextBookID(), "Book2", library.NewAuthor("Author2"), 2021, "Poetry", 2.5))
	cat.AddBook(library.NewAudioBook(lib.IssueNextBookID(), "Book3", library.NewAuthor("Author3"), 2019, "Drama", 3.0))
}

// ------------------ Prompt helpers ------------------

func promptLine(sc *bufio.Scanner, label string) (string, bool) {
	if interactive {
		fmt.Print(label)
	}
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}

func promptInt(sc *bufio.Scanner, label string) (int, bool) {
	raw, ok := promptLine(sc, label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("Invalid number: %s\n", raw)
		return 0, false
	}
	return n, true
}

func promptFloat(sc *bufio.Scanner, label string) (float64, bool) {
	raw, ok := promptLine(sc, label)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Printf("Invalid number: %s\n", raw)
		return 0, false
	}
	return f, true
}

// ------------------ Book commands ------------------

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	kind, ok := promptInt(sc, "Type (1-Printed, 2-EBook, 3-Audio): ")
	if !ok {
		return
	}
	if kind < 1 || kind > 3 {
		fmt.Printf("Unknown book type: %d\n", kind)
		return
	}

	title, ok := promptLine(sc, "Title: ")
	if !ok {
		return
	}
	author, ok := promptLine(sc, "Author: ")
	if !ok {
		return
	}
	year, ok := promptInt(sc, "Year: ")
	if !ok {
		return
	}
	genre, ok := promptLine(sc, "Genre: ")
	if !ok {
		return
	}

	id := lib.IssueNextBookID()
	var book library.Book

	switch kind {
	case 1:
		pages, ok := promptInt(sc, "Pages: ")
		if !ok {
			return
		}
		book = library.NewPrintedBook(id, title, library.NewAuthor(author), year, genre, pages)
	case 2:
		size, ok := promptFloat(sc, "Size MB: ")
		if !ok {
			return
		}
		book = library.NewEBook(id, title, library.NewAuthor(author), year, genre, size)
	case 3:
		dur, ok := promptFloat(sc, "Duration hours: ")
		if !ok {
			return
		}
		book = library.NewAudioBook(id, title, library.NewAuthor(author), year, genre, dur)
	}

	lib.Catalog().AddBook(book)
	fmt.Printf("Added book ID %d: %s\n", id, title)
}

func handleListBooks(lib *library.Library) {
	lines := lib.Catalog().ListAll()
	if len(lines) == 0 {
		fmt.Println("No books in catalog.")
		return
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

func handleBorrow(sc *bufio.Scanner, lib *library.Library) {
	id, ok := promptInt(sc, "Book ID: ")
	if !ok {
		return
	}
	book := lib.Catalog().FindByID(id)
	if book == nil {
		fmt.Printf("No book with ID %d\n", id)
		return
	}
	if !book.Borrow() {
		fmt.Printf("Book '%s' is already borrowed\n", book.Title())
		return
	}
	fmt.Printf("Borrowed '%s'\n", book.Title())
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	id, ok := promptInt(sc, "Book ID: ")
	if !ok {
		return
	}
	book := lib.Catalog().FindByID(id)
	if book == nil {
		fmt.Printf("No book with ID %d\n", id)
		return
	}
	book.Return()
	fmt.Printf("Returned '%s'\n", book.Title())
}

func handleSearch(sc *bufio.Scanner, lib *library.Library) {
	query, ok := promptLine(sc, "Filter (available, or a genre): ")
	if !ok {
		return
	}

	var pred func(library.Book) bool
	if query == "available" {
		pred = func(b library.Book) bool { return b.Available() }
	} else {
		pred = func(b library.Book) bool { return strings.EqualFold(b.Genre(), query) }
	}

	matches := lib.Catalog().Search(pred)
	if len(matches) == 0 {
		fmt.Printf("No books match '%s'.\n", query)
		return
	}
	fmt.Printf("Found %d book(s):\n", len(matches))
	for _, b := range matches {
		fmt.Println(b.Describe())
	}
}

// ------------------ User commands ------------------

func handleAddStudent(sc *bufio.Scanner, lib *library.Library) {
	name, ok := promptLine(sc, "Name: ")
	if !ok {
		return
	}
	faculty, ok := promptLine(sc, "Faculty: ")
	if !ok {
		return
	}
	year, ok := promptInt(sc, "Year: ")
	if !ok {
		return
	}
	s := lib.AddStudent(name, faculty, year)
	fmt.Printf("Added student '%s'\n", s.Name())
}

func handleAddLibrarian(sc *bufio.Scanner, lib *library.Library) {
	name, ok := promptLine(sc, "Name: ")
	if !ok {
		return
	}
	employeeID, ok := promptLine(sc, "Employee ID: ")
	if !ok {
		return
	}
	lb := lib.AddLibrarian(name, employeeID)
	fmt.Printf("Added librarian '%s'\n", lb.Name())
}

func handleListUsers(lib *library.Library) {
	lines := lib.ListUsers()
	if len(lines) == 0 {
		fmt.Println("No users registered.")
		return
	}
	for _, line := range lines {
		fmt.Println(line)
	}
}

// ------------------ Import / export ------------------

func handleExport(lib *library.Library) {
	data, err := library.ExportCatalog(lib.Catalog())
	if err != nil {
		fmt.Printf("Error exporting catalog: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func handleImport(sc *bufio.Scanner, lib *library.Library) {
	path, ok := promptLine(sc, "Path to JSON file: ")
	if !ok {
		return
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	records, err := library.DecodeBookRecords(data)
	if err != nil {
		fmt.Printf("Error decoding records: %v\n", err)
		return
	}

	added := 0
	for _, rec := range records {
		book, err := library.BookFromRecord(rec, lib.IssueNextBookID())
		if err != nil {
			fmt.Printf("Skipping record %q: %v\n", rec.Title, err)
			continue
		}
		lib.Catalog().AddBook(book)
		added++
	}
	fmt.Printf("Imported %d book(s)\n", added)
}
