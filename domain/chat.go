// Package domain contains core concepts of the tag subscription engine.
// This file defines the identifiers and entities shared by every layer.
// No runtime, storage, or platform logic should be added here.
package domain

// ChatID scopes one conversation's subscription state.
// Chats never share state with each other.
type ChatID int64

// UserID is the stable numeric identity of a subscriber.
// Display names may change freely; the ID never does.
type UserID int64

// Tag is a #-prefixed channel key inside a chat.
// Case and exact text form the key: #Foo and #foo are distinct.
type Tag string

// Subscriber is a (user id, display name) pair registered against a tag.
// Name is used for rendering only, never for identity comparisons.
type Subscriber struct {
	ID   UserID
	Name string
}
