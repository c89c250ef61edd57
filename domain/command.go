package domain

// Command is a user-facing operation dispatched by the platform adapter.
type Command interface {
	ChatID() ChatID
}

type SubscribeCommand struct {
	Chat ChatID
	User Subscriber
	Tags []Tag
}

func (c SubscribeCommand) ChatID() ChatID { return c.Chat }

type UnsubscribeCommand struct {
	Chat ChatID
	User Subscriber
	Tags []Tag
}

func (c UnsubscribeCommand) ChatID() ChatID { return c.Chat }

type ListSelfCommand struct {
	Chat ChatID
	User Subscriber
}

func (c ListSelfCommand) ChatID() ChatID { return c.Chat }

type ListAllCommand struct {
	Chat ChatID
}

func (c ListAllCommand) ChatID() ChatID { return c.Chat }

// InfoCommand looks up either a user's subscriptions or a tag's subscribers.
// Args holds the raw tokens after the command word; Mentions and Hashtags
// are the entity spans the extractor found in the same message.
type InfoCommand struct {
	Chat     ChatID
	Args     []string
	Mentions []Mention
	Hashtags []Tag
}

func (c InfoCommand) ChatID() ChatID { return c.Chat }

// FreeformMessage is a plain chat message that may carry hashtags.
// Hashtags keep their in-message order and may contain duplicates.
type FreeformMessage struct {
	Chat     ChatID
	Sender   Subscriber
	Hashtags []Tag
}

func (c FreeformMessage) ChatID() ChatID { return c.Chat }
