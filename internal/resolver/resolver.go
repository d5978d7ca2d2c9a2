package resolver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"versebot/internal/books"
	"versebot/internal/models"
)

// ErrNotFound means the text did not contain a recognizable citation:
// no known book alias, or no chapter:verse part after the book name.
var ErrNotFound = errors.New("scripture reference not recognized")

// chapterVerseRe: chapter, colon, verse, optionally "-" or "," and an
// end verse ("3:16", "5:7-9", "5:7,9").
var chapterVerseRe = regexp.MustCompile(`^\s*(\d{1,3})\s*:\s*(\d{1,3})(?:\s*[-,]\s*(\d{1,3}))?`)

// Resolver turns free-text citations into canonical references using a
// book table. It performs no I/O.
type Resolver struct {
	table *books.Table
}

func New(table *books.Table) *Resolver {
	return &Resolver{table: table}
}

// Resolve parses a citation like "John 3:16" or "1 Peter 5:7-9".
// Chapter and verse are only checked syntactically; nothing verifies
// that the verse actually exists in the book.
func (r *Resolver) Resolve(text string) (models.Reference, error) {
	normalized := books.Normalize(text)
	if normalized == "" {
		return models.Reference{}, ErrNotFound
	}

	book, rest, ok := r.table.Match(normalized)
	if !ok {
		return models.Reference{}, ErrNotFound
	}

	m := chapterVerseRe.FindStringSubmatch(rest)
	if m == nil {
		return models.Reference{}, ErrNotFound
	}

	chapter, _ := strconv.Atoi(m[1])
	verse, _ := strconv.Atoi(m[2])
	if chapter < 1 || verse < 1 {
		return models.Reference{}, ErrNotFound
	}

	ref := models.Reference{
		Book:     book.Number,
		BookName: book.Name,
		Chapter:  chapter,
		Verse:    verse,
	}

	if m[3] != "" {
		end, _ := strconv.Atoi(m[3])
		if end < 1 {
			return models.Reference{}, ErrNotFound
		}
		ref.VerseEnd = end
	}

	return ref, nil
}

// Decode rebuilds a Reference from a canonical code ("43003016" or
// "60005007-60005009") so the display citation can be reconstructed.
func (r *Resolver) Decode(code string) (models.Reference, error) {
	first, second, isRange := strings.Cut(code, "-")

	ref, err := r.decodeSingle(first)
	if err != nil {
		return models.Reference{}, err
	}

	if isRange {
		end, err := r.decodeSingle(second)
		if err != nil {
			return models.Reference{}, err
		}
		if end.Book != ref.Book || end.Chapter != ref.Chapter {
			return models.Reference{}, fmt.Errorf("range crosses book or chapter: %s", code)
		}
		ref.VerseEnd = end.Verse
	}

	return ref, nil
}

func (r *Resolver) decodeSingle(code string) (models.Reference, error) {
	if len(code) != 8 {
		return models.Reference{}, fmt.Errorf("bad code length: %q", code)
	}

	bookNum, err := strconv.Atoi(code[:2])
	if err != nil {
		return models.Reference{}, fmt.Errorf("bad book in code %q", code)
	}
	chapter, err := strconv.Atoi(code[2:5])
	if err != nil {
		return models.Reference{}, fmt.Errorf("bad chapter in code %q", code)
	}
	verse, err := strconv.Atoi(code[5:8])
	if err != nil {
		return models.Reference{}, fmt.Errorf("bad verse in code %q", code)
	}

	book, ok := r.table.ByNumber(bookNum)
	if !ok {
		return models.Reference{}, fmt.Errorf("unknown book number %d in code %q", bookNum, code)
	}
	if chapter < 1 || verse < 1 {
		return models.Reference{}, fmt.Errorf("chapter and verse must be positive in code %q", code)
	}

	return models.Reference{
		Book:     bookNum,
		BookName: book.Name,
		Chapter:  chapter,
		Verse:    verse,
	}, nil
}
