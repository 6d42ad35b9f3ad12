// Package books holds the canonical Tanakh book list and parses textual
// references such as "Genesis 1:1" or "בראשית א:א".
package books

import (
	"strings"

	"github.com/tanakh-search-api/internal/models"
)

// Catalog is an ordered, read-only book list with lookups by key and name
type Catalog struct {
	index  models.BookIndex
	books  []models.Book
	byKey  map[string]int
	byName map[string]int
}

// NewCatalog builds a catalog from a book index. Book order is the order
// of sections, then of books inside each section.
func NewCatalog(index models.BookIndex) *Catalog {
	c := &Catalog{
		index:  index,
		byKey:  make(map[string]int),
		byName: make(map[string]int),
	}
	for _, s := range index.Sections {
		for _, b := range s.Books {
			pos := len(c.books)
			c.books = append(c.books, b)
			c.byKey[b.Key] = pos
			c.byName[strings.ToLower(b.English)] = pos
			c.byName[b.Hebrew] = pos
		}
	}
	return c
}

// Index returns the sectioned book index
func (c *Catalog) Index() models.BookIndex {
	return c.index
}

// Books returns every book in canonical order
func (c *Catalog) Books() []models.Book {
	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

// ByKey looks a book up by its stable key
func (c *Catalog) ByKey(key string) (models.Book, bool) {
	pos, ok := c.byKey[key]
	if !ok {
		return models.Book{}, false
	}
	return c.books[pos], true
}

// ByName looks a book up by English name (any case), Hebrew name or key
func (c *Catalog) ByName(name string) (models.Book, bool) {
	name = strings.TrimSpace(name)
	if pos, ok := c.byName[strings.ToLower(name)]; ok {
		return c.books[pos], true
	}
	if pos, ok := c.byName[name]; ok {
		return c.books[pos], true
	}
	return c.ByKey(strings.ToLower(name))
}

// Order returns the canonical position of a book, or -1 if unknown
func (c *Catalog) Order(key string) int {
	pos, ok := c.byKey[key]
	if !ok {
		return -1
	}
	return pos
}

// TotalChapters sums the chapter counts of all books
func (c *Catalog) TotalChapters() int {
	n := 0
	for _, b := range c.books {
		n += b.Chapters
	}
	return n
}

var tanakh = NewCatalog(models.BookIndex{
	Sections: []models.Section{
		{
			Name:       "Torah",
			NameHebrew: "תורה",
			Books: []models.Book{
				{Key: "genesis", English: "Genesis", Hebrew: "בראשית", Chapters: 50},
				{Key: "exodus", English: "Exodus", Hebrew: "שמות", Chapters: 40},
				{Key: "leviticus", English: "Leviticus", Hebrew: "ויקרא", Chapters: 27},
				{Key: "numbers", English: "Numbers", Hebrew: "במדבר", Chapters: 36},
				{Key: "deuteronomy", English: "Deuteronomy", Hebrew: "דברים", Chapters: 34},
			},
		},
		{
			Name:       "Nevi'im",
			NameHebrew: "נביאים",
			Books: []models.Book{
				{Key: "joshua", English: "Joshua", Hebrew: "יהושע", Chapters: 24},
				{Key: "judges", English: "Judges", Hebrew: "שופטים", Chapters: 21},
				{Key: "i_samuel", English: "I Samuel", Hebrew: "שמואל א", Chapters: 31},
				{Key: "ii_samuel", English: "II Samuel", Hebrew: "שמואל ב", Chapters: 24},
				{Key: "i_kings", English: "I Kings", Hebrew: "מלכים א", Chapters: 22},
				{Key: "ii_kings", English: "II Kings", Hebrew: "מלכים ב", Chapters: 25},
				{Key: "isaiah", English: "Isaiah", Hebrew: "ישעיהו", Chapters: 66},
				{Key: "jeremiah", English: "Jeremiah", Hebrew: "ירמיהו", Chapters: 52},
				{Key: "ezekiel", English: "Ezekiel", Hebrew: "יחזקאל", Chapters: 48},
				{Key: "hosea", English: "Hosea", Hebrew: "הושע", Chapters: 14},
				{Key: "joel", English: "Joel", Hebrew: "יואל", Chapters: 4},
				{Key: "amos", English: "Amos", Hebrew: "עמוס", Chapters: 9},
				{Key: "obadiah", English: "Obadiah", Hebrew: "עובדיה", Chapters: 1},
				{Key: "jonah", English: "Jonah", Hebrew: "יונה", Chapters: 4},
				{Key: "micah", English: "Micah", Hebrew: "מיכה", Chapters: 7},
				{Key: "nahum", English: "Nahum", Hebrew: "נחום", Chapters: 3},
				{Key: "habakkuk", English: "Habakkuk", Hebrew: "חבקוק", Chapters: 3},
				{Key: "zephaniah", English: "Zephaniah", Hebrew: "צפניה", Chapters: 3},
				{Key: "haggai", English: "Haggai", Hebrew: "חגי", Chapters: 2},
				{Key: "zechariah", English: "Zechariah", Hebrew: "זכריה", Chapters: 14},
				{Key: "malachi", English: "Malachi", Hebrew: "מלאכי", Chapters: 3},
			},
		},
		{
			Name:       "Ketuvim",
			NameHebrew: "כתובים",
			Books: []models.Book{
				{Key: "psalms", English: "Psalms", Hebrew: "תהלים", Chapters: 150},
				{Key: "proverbs", English: "Proverbs", Hebrew: "משלי", Chapters: 31},
				{Key: "job", English: "Job", Hebrew: "איוב", Chapters: 42},
				{Key: "song_of_songs", English: "Song of Songs", Hebrew: "שיר השירים", Chapters: 8},
				{Key: "ruth", English: "Ruth", Hebrew: "רות", Chapters: 4},
				{Key: "lamentations", English: "Lamentations", Hebrew: "איכה", Chapters: 5},
				{Key: "ecclesiastes", English: "Ecclesiastes", Hebrew: "קהלת", Chapters: 12},
				{Key: "esther", English: "Esther", Hebrew: "אסתר", Chapters: 10},
				{Key: "daniel", English: "Daniel", Hebrew: "דניאל", Chapters: 12},
				{Key: "ezra", English: "Ezra", Hebrew: "עזרא", Chapters: 10},
				{Key: "nehemiah", English: "Nehemiah", Hebrew: "נחמיה", Chapters: 13},
				{Key: "i_chronicles", English: "I Chronicles", Hebrew: "דברי הימים א", Chapters: 29},
				{Key: "ii_chronicles", English: "II Chronicles", Hebrew: "דברי הימים ב", Chapters: 36},
			},
		},
	},
})

// Tanakh returns the catalog of the 39 books in traditional order
func Tanakh() *Catalog {
	return tanakh
}
