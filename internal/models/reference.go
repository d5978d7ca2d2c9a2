package models

import "fmt"

// Reference — разобранная ссылка на стих (книга, глава, стих).
// VerseEnd > 0 means the reference covers a range ("1 Peter 5:7-9").
type Reference struct {
	Book     int
	BookName string
	Chapter  int
	Verse    int
	VerseEnd int
}

// IsRange reports whether the reference spans more than one verse.
func (r Reference) IsRange() bool {
	return r.VerseEnd > 0 && r.VerseEnd != r.Verse
}

// Code returns the canonical numeric code: book padded to 2 digits,
// chapter to 3, verse to 3 ("43003016"). For ranges the second code
// shares book and chapter and is joined with "-".
func (r Reference) Code() string {
	code := fmt.Sprintf("%02d%03d%03d", r.Book, r.Chapter, r.Verse)
	if r.IsRange() {
		code += fmt.Sprintf("-%02d%03d%03d", r.Book, r.Chapter, r.VerseEnd)
	}
	return code
}

// String — метод для красивого вывода ("1 Peter 5:7-9").
func (r Reference) String() string {
	s := fmt.Sprintf("%s %d:%d", r.BookName, r.Chapter, r.Verse)
	if r.IsRange() {
		s += fmt.Sprintf("-%d", r.VerseEnd)
	}
	return s
}
