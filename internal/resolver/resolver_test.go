package resolver

import (
	"errors"
	"testing"

	"versebot/internal/books"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	return New(books.Default())
}

func TestResolveSingleVerse(t *testing.T) {
	r := newResolver(t)

	cases := []struct {
		in      string
		code    string
		display string
	}{
		{"John 3:16", "43003016", "John 3:16"},
		{"john 3:16", "43003016", "John 3:16"},
		{"Joh. 3:16", "43003016", "John 3:16"},
		{"1 Peter 5:7", "60005007", "1 Peter 5:7"},
		{"1Pe 5:7", "60005007", "1 Peter 5:7"},
		{"Genesis 1:1", "01001001", "Genesis 1:1"},
		{"Psalm 83:18", "19083018", "Psalms 83:18"},
		{"Revelation 21:4", "66021004", "Revelation 21:4"},
	}

	for _, tc := range cases {
		ref, err := r.Resolve(tc.in)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tc.in, err)
		}
		if got := ref.Code(); got != tc.code {
			t.Fatalf("Resolve(%q): code %q, want %q", tc.in, got, tc.code)
		}
		if got := ref.String(); got != tc.display {
			t.Fatalf("Resolve(%q): display %q, want %q", tc.in, got, tc.display)
		}
	}
}

func TestResolveRange(t *testing.T) {
	r := newResolver(t)

	ref, err := r.Resolve("1 Peter 5:7-9")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !ref.IsRange() {
		t.Fatal("expected a range reference")
	}
	if got := ref.Code(); got != "60005007-60005009" {
		t.Fatalf("code %q, want 60005007-60005009", got)
	}
	if got := ref.String(); got != "1 Peter 5:7-9" {
		t.Fatalf("display %q, want '1 Peter 5:7-9'", got)
	}

	// Comma works as the range separator too.
	ref, err = r.Resolve("Matthew 24:45,47")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := ref.Code(); got != "40024045-40024047" {
		t.Fatalf("code %q, want 40024045-40024047", got)
	}
}

func TestResolveLongestAliasWins(t *testing.T) {
	r := newResolver(t)

	ref, err := r.Resolve("1 john 4:8")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ref.Book != 62 {
		t.Fatalf("expected book 62 (1 John), got %d", ref.Book)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := newResolver(t)

	for _, in := range []string{
		"Nonsense 1:1",
		"johnson 1:1",
		"John",
		"John three sixteen",
		"John 3",
		"John 0:1",
		"John 3:0",
		"",
	} {
		if _, err := r.Resolve(in); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Resolve(%q): expected ErrNotFound, got %v", in, err)
		}
	}
}

func TestResolveNoCanonRangeCheck(t *testing.T) {
	r := newResolver(t)

	// Chapter 999 does not exist, but the resolver only checks syntax.
	ref, err := r.Resolve("John 999:999")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got := ref.Code(); got != "43999999" {
		t.Fatalf("code %q, want 43999999", got)
	}
}

func TestDecode(t *testing.T) {
	r := newResolver(t)

	ref, err := r.Decode("43003016")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := ref.String(); got != "John 3:16" {
		t.Fatalf("display %q, want 'John 3:16'", got)
	}

	ref, err = r.Decode("60005007-60005009")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := ref.String(); got != "1 Peter 5:7-9" {
		t.Fatalf("display %q, want '1 Peter 5:7-9'", got)
	}
}

func TestDecodeRejectsBadCodes(t *testing.T) {
	r := newResolver(t)

	for _, code := range []string{
		"",
		"43",
		"4300301x",
		"99003016",
		"43003016-44003018", // range across books
	} {
		if _, err := r.Decode(code); err == nil {
			t.Fatalf("Decode(%q): expected error", code)
		}
	}
}
