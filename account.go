package driftmail

import (
	"context"
	"fmt"

	"github.com/driftmail/client-go/internal/api"
)

// Credential identifies a provisioned mailbox. It is immutable once
// issued. The password is only meaningful during provisioning; all
// authorized calls use the bearer token, which expires per upstream
// policy and is not refreshed locally.
type Credential struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	Token    string `json:"token"`
}

// Account is a provisioned mailbox bound to a client.
type Account struct {
	credential Credential
	client     *Client
}

// Address returns the mailbox email address.
func (a *Account) Address() string {
	return a.credential.Address
}

// Credential returns the full credential, e.g. for persisting in a
// session store.
func (a *Account) Credential() Credential {
	return a.credential
}

// Messages fetches the complete inbox, following the server's pagination
// links until none remains. Summaries are returned in the server's order,
// pages concatenated in fetch order; an empty inbox yields an empty
// slice. If any page fetch fails the whole call fails with ErrFetchFailed
// and results collected so far are discarded.
func (a *Account) Messages(ctx context.Context) ([]MessageSummary, error) {
	var all []MessageSummary

	path := api.MessagesPath
	for path != "" {
		page, err := a.client.apiClient.GetMessagesPage(ctx, a.credential.Token, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFetchFailed, wrapError(err))
		}
		for _, m := range page.Members {
			all = append(all, MessageSummary{
				ID:      m.ID,
				From:    m.From.Address,
				Subject: m.Subject,
				Intro:   m.Intro,
			})
		}
		path = page.Next
	}

	return all, nil
}

// MessageBody fetches a single message and reduces it to displayable
// plain text: the plain-text representation when present, otherwise the
// first HTML representation with entities decoded and tags stripped.
//
// Unlike Messages, MessageBody never reports an error: a fetch failure
// yields UnavailableBodyText and an empty body yields EmptyBodyText.
// The asymmetry is deliberate — a body render must always produce
// something displayable, while an inbox listing must never be silently
// incomplete.
func (a *Account) MessageBody(ctx context.Context, messageID string) MessageBody {
	msg, err := a.client.apiClient.GetMessage(ctx, a.credential.Token, messageID)
	if err != nil {
		return MessageBody{MessageID: messageID, Text: UnavailableBodyText}
	}
	return MessageBody{MessageID: messageID, Text: renderBodyText(msg.Text, msg.HTML)}
}
