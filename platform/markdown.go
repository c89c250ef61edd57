package platform

import (
	"fmt"
	"strings"
	"tagcast/domain"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
)

// MentionMarkdown renders an inline mention that notifies the user even
// when they have no public handle, by linking their numeric id.
func MentionMarkdown(s domain.Subscriber) string {
	return fmt.Sprintf("[%s](tg://user?id=%d)", markdownEscaper.Replace(s.Name), s.ID)
}
