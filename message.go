package driftmail

// MessageSummary is one inbox listing entry. Summaries are read-only
// snapshots; they are not cached between calls.
type MessageSummary struct {
	ID      string
	From    string
	Subject string
	Intro   string
}

// MessageBody is the decoded plain-text body of a single message,
// produced on demand by Account.MessageBody. Text is always displayable:
// sentinel strings stand in for empty or unavailable bodies.
type MessageBody struct {
	MessageID string
	Text      string
}
