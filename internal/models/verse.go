package models

// VerseResult is what one lookup produces: the display citation plus
// whatever text came out of the provider page. Text is empty when the
// fetch or the extraction failed; the caller decides how to render that.
type VerseResult struct {
	Reference string
	Code      string
	URL       string
	Text      string
}
