// Package driftmail provides a Go client for mail.tm-style disposable
// email services.
//
// The client provisions throwaway mailboxes and reads their inboxes over
// the upstream JSON REST API. Message listings follow the server's
// pagination links transparently, so callers always see the full inbox.
//
// Basic usage:
//
//	client, err := driftmail.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Provision a disposable mailbox
//	account, err := client.CreateAccount(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Address:", account.Address())
//
//	// Read the inbox
//	messages, err := account.Messages(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, msg := range messages {
//	    fmt.Println(msg.From, msg.Subject)
//	}
package driftmail
