package format

import (
	"fmt"

	"versebot/internal/models"
)

// FetchErrorText replaces the verse body when the page could not be
// fetched or parsed. The citation is still shown, so the user sees what
// was attempted.
const FetchErrorText = "Error fetching verse. Check your connection and try again."

// NotRecognizedText is shown when the input was not a citation at all;
// in that case nothing is fetched and nothing else is rendered.
const NotRecognizedText = "Could not recognize the scripture reference."

// Options — строки оформления из конфига. They are opaque pass-through
// values; the pipeline never interprets them.
type Options struct {
	LinkOnly    bool
	LinkPrefix  string
	LinkSuffix  string
	VersePrefix string
	VerseSuffix string
}

// RenderText wraps the verse body with the configured prefix/suffix and
// appends the citation line.
func (o Options) RenderText(res models.VerseResult) string {
	return fmt.Sprintf("%s%s%s\n%s", o.VersePrefix, res.Text, o.VerseSuffix, res.Reference)
}

// RenderLink wraps the citation in a markdown link to the finder URL.
func (o Options) RenderLink(res models.VerseResult) string {
	return fmt.Sprintf("%s[%s](%s)%s", o.LinkPrefix, res.Reference, res.URL, o.LinkSuffix)
}

// Render picks the output form. Soft failures (err != nil after a code
// was resolved) render the fixed placeholder in place of the verse body.
func (o Options) Render(res models.VerseResult, err error) string {
	if o.LinkOnly {
		return o.RenderLink(res)
	}
	if err != nil {
		res.Text = FetchErrorText
	}
	return o.RenderText(res)
}
