package format

import (
	"errors"
	"strings"
	"testing"

	"versebot/internal/models"
)

func peterResult() models.VerseResult {
	return models.VerseResult{
		Reference: "1 Peter 5:7",
		Code:      "60005007",
		URL:       "https://example.org/finder?wtlocale=E&bible=60005007",
		Text:      "while you throw all your anxiety on him, because he cares for you.",
	}
}

func TestRenderText(t *testing.T) {
	opts := Options{VersePrefix: "> ", VerseSuffix: " <"}

	got := opts.Render(peterResult(), nil)
	want := "> while you throw all your anxiety on him, because he cares for you. <\n1 Peter 5:7"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderSoftFailure(t *testing.T) {
	res := peterResult()
	res.Text = ""

	opts := Options{}
	got := opts.Render(res, errors.New("verse fetch failed: dial tcp: refused"))

	// Placeholder body, but the computed citation is kept.
	if !strings.HasPrefix(got, FetchErrorText) {
		t.Fatalf("expected placeholder text, got %q", got)
	}
	if !strings.HasSuffix(got, "1 Peter 5:7") {
		t.Fatalf("citation missing from %q", got)
	}
}

func TestRenderLinkOnly(t *testing.T) {
	opts := Options{LinkOnly: true, LinkPrefix: "see ", LinkSuffix: "."}

	got := opts.Render(peterResult(), nil)
	want := "see [1 Peter 5:7](https://example.org/finder?wtlocale=E&bible=60005007)."
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
