package api

import "time"

// Domain represents one entry of the GET /domains collection.
type Domain struct {
	ID       string `json:"id"`
	Domain   string `json:"domain"`
	IsActive bool   `json:"isActive"`
}

// AccountResource represents the POST /accounts response.
type AccountResource struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// Mailbox represents a sender or recipient address on a message.
type Mailbox struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// MessageResource represents a message as returned by the listing and
// single-message endpoints. The listing omits Text and HTML; the
// single-message endpoint fills them in.
type MessageResource struct {
	ID        string    `json:"id"`
	From      Mailbox   `json:"from"`
	Subject   string    `json:"subject"`
	Intro     string    `json:"intro"`
	Seen      bool      `json:"seen"`
	CreatedAt time.Time `json:"createdAt"`
	Text      string    `json:"text,omitempty"`
	HTML      []string  `json:"html,omitempty"`
}

// MessagesPage is one page of the messages listing plus the continuation
// path to the next page, empty when this is the last page.
type MessagesPage struct {
	Members []MessageResource
	Next    string
}

// hydraView carries the pagination links of a hydra collection.
type hydraView struct {
	Next string `json:"hydra:next"`
}

type domainCollection struct {
	Members []Domain `json:"hydra:member"`
}

type messageCollection struct {
	Members []MessageResource `json:"hydra:member"`
	View    *hydraView        `json:"hydra:view"`
}

type createAccountRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
}
