package models

// Book describes one book of the Tanakh
type Book struct {
	Key      string `json:"key"`
	English  string `json:"english"`
	Hebrew   string `json:"hebrew"`
	Chapters int    `json:"chapters"`
}

// Section groups books into Torah, Nevi'im and Ketuvim
type Section struct {
	Name       string `json:"name"`
	NameHebrew string `json:"nameHebrew"`
	Books      []Book `json:"books"`
}

// BookIndex lists every section in canonical order
type BookIndex struct {
	Sections []Section `json:"sections"`
}

// ChapterVerse is a single verse inside a chapter file. Parsha holds the
// open (פ) or closed (ס) section marker that ends the verse, if any.
type ChapterVerse struct {
	Number int    `json:"number"`
	Hebrew string `json:"hebrew"`
	Parsha string `json:"parsha,omitempty"`
}

// Chapter is the content of one per-chapter JSON file
type Chapter struct {
	Book       string         `json:"book"`
	BookHebrew string         `json:"bookHebrew"`
	Chapter    int            `json:"chapter"`
	Verses     []ChapterVerse `json:"verses"`
}

// Reference points at a chapter, or a verse when Verse > 0
type Reference struct {
	BookKey string `json:"bookKey"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse,omitempty"`
}
