package platform

import (
	"tagcast/domain"
	"unicode"
)

// Extractor scans raw message text for hashtag and mention spans, the way
// the platform marks them up: a span starts at an unattached # or @ and
// runs over letters, digits and underscores.
//
// Hashtags keep message order and are NOT deduplicated; callers that need
// set semantics must handle duplicates themselves.
type Extractor struct{}

func NewExtractor() Extractor { return Extractor{} }

func (Extractor) Hashtags(text string) []domain.Tag {
	var tags []domain.Tag
	for _, span := range scan(text, '#') {
		tags = append(tags, domain.Tag(span))
	}
	return tags
}

// Mentions yields raw @handles. Resolution to a real account is the
// platform's job; a text-only scan can never produce a ResolvedUser.
func (Extractor) Mentions(text string) []domain.Mention {
	var mentions []domain.Mention
	for _, span := range scan(text, '@') {
		mentions = append(mentions, domain.RawHandle(span))
	}
	return mentions
}

// scan returns every marker-prefixed span of text, marker included.
func scan(text string, marker rune) []string {
	var spans []string
	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if runes[i] != marker {
			continue
		}
		// A marker glued to a preceding word is not a span start.
		if i > 0 && isSpanRune(runes[i-1]) {
			continue
		}
		j := i + 1
		for j < len(runes) && isSpanRune(runes[j]) {
			j++
		}
		if j > i+1 {
			spans = append(spans, string(runes[i:j]))
		}
		i = j - 1
	}
	return spans
}

func isSpanRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
