package domain

// Mention is a platform mention span. It is either resolved to a user
// account or a bare handle with no account attached; lookups must branch
// on the variant explicitly instead of guessing from the text.
type Mention interface {
	mention()
}

// ResolvedUser is a mention the platform tied to a real account.
type ResolvedUser struct {
	ID   UserID
	Name string
}

func (ResolvedUser) mention() {}

// RawHandle is an @handle string the platform could not resolve.
type RawHandle string

func (RawHandle) mention() {}
