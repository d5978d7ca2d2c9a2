package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"versebot/internal/models"
	"versebot/internal/parser"
)

// Some providers reject Go's default client identifier, so requests go
// out with a desktop browser User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	// ErrNetwork — запрос не дошел или сервер ответил не 200.
	ErrNetwork = errors.New("verse fetch failed")

	// ErrNoVerse — страница получена, но стих в разметке не найден.
	ErrNoVerse = errors.New("verse not found in page")
)

// VerseClient fetches verse text from the provider. One GET per lookup,
// no retries; a failed fetch still yields a result carrying the citation
// so the caller has something to show.
type VerseClient struct {
	httpClient *http.Client
	baseURL    string
	locale     string
	extractor  parser.Extractor
}

func NewVerseClient(client *http.Client, baseURL string, locale string, extractor parser.Extractor) *VerseClient {
	return &VerseClient{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		locale:     locale,
		extractor:  extractor,
	}
}

// BuildVerseURL builds the finder query URL for a canonical code.
// The provider expects book numbers 1-9 unpadded in the bible parameter,
// so the leading zero of the 2-digit book prefix is stripped there; the
// code itself keeps the padded form. Both halves of a range are
// transformed independently.
func BuildVerseURL(baseURL string, code string, locale string) string {
	parts := strings.Split(code, "-")
	for i, p := range parts {
		parts[i] = stripBookZero(p)
	}
	return fmt.Sprintf("%s/finder?wtlocale=%s&bible=%s", strings.TrimRight(baseURL, "/"), locale, strings.Join(parts, "-"))
}

func stripBookZero(code string) string {
	if len(code) == 8 && code[0] == '0' {
		return code[1:]
	}
	return code
}

// URL returns the finder URL for a reference with the client's settings.
func (c *VerseClient) URL(ref models.Reference) string {
	return BuildVerseURL(c.baseURL, ref.Code(), c.locale)
}

// FetchVerse resolves one reference into verse text. The returned result
// always carries the display citation, code and URL; on a soft failure
// Text is empty and the error tells the kind (ErrNetwork or ErrNoVerse).
func (c *VerseClient) FetchVerse(ctx context.Context, ref models.Reference) (models.VerseResult, error) {
	res := models.VerseResult{
		Reference: ref.String(),
		Code:      ref.Code(),
		URL:       c.URL(ref),
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, res.URL, nil)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	log.Printf("Запрос стиха: %s", res.URL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return res, fmt.Errorf("%w: сервер вернул код %d", ErrNetwork, resp.StatusCode)
	}

	var bodyBuf bytes.Buffer
	if _, err := io.Copy(&bodyBuf, resp.Body); err != nil {
		return res, fmt.Errorf("%w: ошибка чтения ответа: %v", ErrNetwork, err)
	}

	text, err := c.extractor.ExtractVerse(&bodyBuf)
	if err != nil {
		if errors.Is(err, parser.ErrNoVerse) {
			return res, fmt.Errorf("%w: %s", ErrNoVerse, res.Reference)
		}
		return res, fmt.Errorf("%w: %v", ErrNoVerse, err)
	}

	res.Text = text
	return res, nil
}
