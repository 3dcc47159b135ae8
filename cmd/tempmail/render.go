package main

import (
	"fmt"
	"strings"

	driftmail "github.com/driftmail/client-go"
)

// Presentation caps. The SDK returns the full inbox and full body; the
// front-end is the one place output size is bounded so replies stay
// readable in a chat window.
const (
	maxListedMessages = 20
	maxBodyChars      = 3500
)

// renderInbox formats message summaries as one reply block, capped at
// maxListedMessages with a sentinel line when the inbox is longer.
func renderInbox(messages []driftmail.MessageSummary) string {
	if len(messages) == 0 {
		return "Inbox is empty."
	}

	var b strings.Builder
	for i, msg := range messages {
		if i >= maxListedMessages {
			fmt.Fprintf(&b, "... (showing first %d messages only)\n", maxListedMessages)
			break
		}
		fmt.Fprintf(&b, "#%d\nFrom: %s\nSubject: %s\nSnippet: %s\n\n",
			i+1, orUnknown(msg.From), orNone(msg.Subject), msg.Intro)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderBody formats a message body, truncated to maxBodyChars with a
// sentinel line when the body is longer.
func renderBody(body driftmail.MessageBody) string {
	text := body.Text
	if len(text) > maxBodyChars {
		text = text[:maxBodyChars] + "\n... (truncated)"
	}
	return text
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orNone(s string) string {
	if s == "" {
		return "No subject"
	}
	return s
}
