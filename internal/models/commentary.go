package models

// Commentator identifies a commentary source
type Commentator struct {
	Name       string `json:"name"`
	NameHebrew string `json:"nameHebrew"`
	Slug       string `json:"-"` // title prefix used by the commentary API, e.g. "Rashi"
}

// Commentary is a commentator's text on a single verse
type Commentary struct {
	Name       string   `json:"name"`
	NameHebrew string   `json:"nameHebrew"`
	Ref        string   `json:"ref"`
	Hebrew     []string `json:"hebrew"`
	English    []string `json:"english"`
}

// CommentaryResponse is the response for the commentary endpoint
type CommentaryResponse struct {
	BookKey      string       `json:"bookKey"`
	Chapter      int          `json:"chapter"`
	Verse        int          `json:"verse"`
	Commentaries []Commentary `json:"commentaries"`
}
