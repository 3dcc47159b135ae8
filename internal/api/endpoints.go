package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// MessagesPath is the first page of the messages listing. Subsequent
// pages come from the server's continuation links.
const MessagesPath = "/messages"

// GetDomains lists the domains currently available for new addresses.
func (c *Client) GetDomains(ctx context.Context) ([]Domain, error) {
	var result domainCollection
	if err := c.Do(ctx, http.MethodGet, "/domains", "", nil, &result); err != nil {
		return nil, err
	}
	return result.Members, nil
}

// CreateAccount registers a new address/password pair with the upstream
// service.
func (c *Client) CreateAccount(ctx context.Context, address, password string) (*AccountResource, error) {
	req := createAccountRequest{Address: address, Password: password}
	var result AccountResource
	if err := c.Do(ctx, http.MethodPost, "/accounts", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateToken exchanges an address/password pair for a bearer token.
func (c *Client) CreateToken(ctx context.Context, address, password string) (string, error) {
	req := tokenRequest{Address: address, Password: password}
	var result tokenResponse
	if err := c.Do(ctx, http.MethodPost, "/token", "", req, &result); err != nil {
		return "", err
	}
	return result.Token, nil
}

// GetMessagesPage fetches one page of the messages listing. path is
// MessagesPath for the first page or the continuation path from a
// previous page. The returned Next is empty on the last page.
func (c *Client) GetMessagesPage(ctx context.Context, token, path string) (*MessagesPage, error) {
	if path == "" {
		path = MessagesPath
	}

	var result messageCollection
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}

	page := &MessagesPage{Members: result.Members}
	if result.View != nil {
		page.Next = result.View.Next
	}
	return page, nil
}

// GetMessage fetches a single message with its full body representations.
func (c *Client) GetMessage(ctx context.Context, token, messageID string) (*MessageResource, error) {
	path := fmt.Sprintf("/messages/%s", url.PathEscape(messageID))
	var result MessageResource
	if err := c.Do(ctx, http.MethodGet, path, token, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
