package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoVerse means the page was fetched fine but no verse element was
// found in the markup.
var ErrNoVerse = errors.New("no verse element in page")

// Extractor pulls verse text out of a provider page. Keep one
// implementation per known markup version so a provider redesign only
// costs a new extractor, not changes to the resolver or the client.
type Extractor interface {
	ExtractVerse(body io.Reader) (string, error)
}

// FinderExtractor handles the current finder page markup: the verse text
// sits in the first element whose class attribute contains "verse".
// This is a deliberately thin assumption about the markup and will break
// if the provider renames the class; that is the trade-off.
type FinderExtractor struct{}

func NewFinderExtractor() FinderExtractor {
	return FinderExtractor{}
}

func (FinderExtractor) ExtractVerse(body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения HTML: %w", err)
	}

	sel := doc.Find(`[class*="verse"]`).First()
	if sel.Length() == 0 {
		return "", ErrNoVerse
	}

	text := CleanFragment(sel.Text())
	if text == "" {
		return "", ErrNoVerse
	}
	return text, nil
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// entities is the fixed set the cleanup decodes; anything more exotic
// stays as-is.
var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
)

// CleanFragment strips residual markup tags, decodes a fixed set of HTML
// entities and normalizes whitespace. Already-clean text passes through
// unchanged.
func CleanFragment(s string) string {
	s = tagRe.ReplaceAllString(s, "")
	s = entities.Replace(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
