// Package platform is the boundary with the messaging platform.
// It models inbound updates, extracts entities from raw text, renders
// mention markup, and dispatches to the core services. The transport that
// actually delivers updates is out of scope and plugs in from the outside.
package platform

import (
	"tagcast/domain"

	"github.com/google/uuid"
)

type Kind int

const (
	KindFreeform Kind = iota
	KindSubscribe
	KindUnsubscribe
	KindListSelf
	KindListAll
	KindInfo
)

// Update is one inbound platform event. Args holds the raw tokens after
// the command word. Mentions carries whatever mention resolution the
// platform already performed; when empty, the extractor's own scan of the
// text is used instead.
type Update struct {
	ID       uuid.UUID
	Chat     domain.ChatID
	Sender   domain.Subscriber
	Kind     Kind
	Args     []string
	Text     string
	Caption  string
	Mentions []domain.Mention
}
