package books

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
)

// Book — одна книга канона: номер (1-66), имя и варианты написания.
type Book struct {
	Number  int      `json:"number"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type aliasEntry struct {
	alias string
	book  int
}

// Table maps recognized book names and abbreviations to book numbers.
// It is immutable after construction; lookups are safe for concurrent use.
type Table struct {
	byNumber map[int]Book
	aliases  []aliasEntry
}

// NewTable builds a lookup table from a book list. Every book name is a
// recognized alias by itself; for aliases with internal spaces a
// space-stripped variant is added as well ("1 peter" and "1peter").
func NewTable(list []Book) (*Table, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("пустой список книг")
	}

	t := &Table{byNumber: make(map[int]Book, len(list))}

	seen := make(map[string]struct{})
	add := func(alias string, number int) {
		alias = Normalize(alias)
		if alias == "" {
			return
		}
		if _, ok := seen[alias]; ok {
			return
		}
		seen[alias] = struct{}{}
		t.aliases = append(t.aliases, aliasEntry{alias: alias, book: number})

		stripped := strings.ReplaceAll(alias, " ", "")
		if stripped != alias {
			if _, ok := seen[stripped]; !ok {
				seen[stripped] = struct{}{}
				t.aliases = append(t.aliases, aliasEntry{alias: stripped, book: number})
			}
		}
	}

	for _, b := range list {
		if b.Number < 1 || b.Number > 66 {
			return nil, fmt.Errorf("некорректный номер книги: %d (%s)", b.Number, b.Name)
		}
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("книга %d без имени", b.Number)
		}
		if _, ok := t.byNumber[b.Number]; ok {
			return nil, fmt.Errorf("номер книги %d задан дважды", b.Number)
		}
		t.byNumber[b.Number] = b

		add(b.Name, b.Number)
		for _, a := range b.Aliases {
			add(a, b.Number)
		}
	}

	// Longest alias wins, so "1 john" is tried before "john".
	sort.Slice(t.aliases, func(i, j int) bool {
		if len(t.aliases[i].alias) != len(t.aliases[j].alias) {
			return len(t.aliases[i].alias) > len(t.aliases[j].alias)
		}
		return t.aliases[i].alias < t.aliases[j].alias
	})

	return t, nil
}

// Load reads a book table from a JSON file (array of {number, name, aliases}).
// Lets deployments swap in localized book names without a rebuild.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл книг: %w", err)
	}

	var list []Book
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("некорректный JSON таблицы книг: %w", err)
	}

	return NewTable(list)
}

// Normalize lowercases the text, removes abbreviation dots and collapses
// whitespace. Both aliases and user input go through the same form.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Match finds a book alias at the start of an already-normalized string.
// Aliases are tried longest-first; a match is rejected when the character
// right after the alias is a letter, so "johnson" never matches "john".
// Returns the book, the remainder of the string and whether a match was made.
func (t *Table) Match(s string) (Book, string, bool) {
	for _, e := range t.aliases {
		if !strings.HasPrefix(s, e.alias) {
			continue
		}
		rest := s[len(e.alias):]
		if rest != "" {
			r := []rune(rest)[0]
			if unicode.IsLetter(r) {
				continue
			}
		}
		return t.byNumber[e.book], rest, true
	}
	return Book{}, "", false
}

// ByNumber returns the book for a 1-66 book number.
func (t *Table) ByNumber(n int) (Book, bool) {
	b, ok := t.byNumber[n]
	return b, ok
}
