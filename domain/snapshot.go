package domain

// Snapshot is an order-preserving copy of one chat's subscriptions.
// Tag order is tag insertion order; subscriber order is subscription order.
// Restoring a snapshot must reproduce both.
type Snapshot struct {
	Tags []TagState
}

type TagState struct {
	Tag         Tag
	Subscribers []Subscriber
}
