package platform

import (
	"tagcast/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractor_Hashtags(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		description string
		text        string
		want        []domain.Tag
	}{
		{"Should keep message order", "ping #go and #rust folks", []domain.Tag{"#go", "#rust"}},
		{"Should keep duplicates", "#go again #go", []domain.Tag{"#go", "#go"}},
		{"Should be case sensitive", "#Foo #foo", []domain.Tag{"#Foo", "#foo"}},
		{"Should allow digits and underscores", "#go_1_2", []domain.Tag{"#go_1_2"}},
		{"Should ignore a bare #", "just a # sign", nil},
		{"Should ignore a # glued to a word", "price#tag", nil},
		{"Should stop the span at punctuation", "see #go!", []domain.Tag{"#go"}},
		{"Should handle empty text", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, extractor.Hashtags(tt.text))
		})
	}
}

func TestExtractor_Mentions_Are_Raw_Handles(t *testing.T) {
	req := require.New(t)
	extractor := NewExtractor()

	mentions := extractor.Mentions("cc @alice and @bob_99")
	req.Equal([]domain.Mention{domain.RawHandle("@alice"), domain.RawHandle("@bob_99")}, mentions)

	// A text scan can never resolve an account
	for _, m := range mentions {
		_, resolved := m.(domain.ResolvedUser)
		req.False(resolved)
	}
}

func TestMentionMarkdown(t *testing.T) {
	req := require.New(t)

	req.Equal("[alice](tg://user?id=1)",
		MentionMarkdown(domain.Subscriber{ID: 1, Name: "alice"}))

	// Markdown control characters in display names must not break the link
	req.Equal(`[a\_b\*c](tg://user?id=2)`,
		MentionMarkdown(domain.Subscriber{ID: 2, Name: "a_b*c"}))
}
