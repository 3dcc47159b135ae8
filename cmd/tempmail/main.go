// Command tempmail is a small console front-end for disposable
// mailboxes: it provisions an address per user, lists the inbox, and
// renders message bodies, persisting user sessions across runs.
//
// Usage:
//
//	tempmail new <user>
//	tempmail inbox <user>
//	tempmail read <user> <message-id>
//	tempmail reset <user>
//
// Configuration comes from the environment (a .env file is honored):
//
//	TEMPMAIL_API_URL       upstream API base URL (default https://api.mail.tm)
//	TEMPMAIL_SESSION_DB    SQLite session database path (preferred when set)
//	TEMPMAIL_SESSION_FILE  JSON session file path (default sessions.json)
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	driftmail "github.com/driftmail/client-go"
	"github.com/driftmail/client-go/sessionstore"
)

const commandTimeout = 60 * time.Second

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fatal("create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, logger *zap.Logger) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: tempmail <new|inbox|read|reset> <user> [message-id]")
	}
	command, user := args[0], args[1]

	var opts []driftmail.Option
	if baseURL := os.Getenv("TEMPMAIL_API_URL"); baseURL != "" {
		opts = append(opts, driftmail.WithBaseURL(baseURL))
	}
	client, err := driftmail.New(opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch command {
	case "new":
		return newMailbox(ctx, client, store, user, logger)
	case "inbox":
		return showInbox(ctx, client, store, user)
	case "read":
		if len(args) < 3 {
			return fmt.Errorf("usage: tempmail read <user> <message-id>")
		}
		return readMessage(ctx, client, store, user, args[2])
	case "reset":
		if err := store.Remove(user); err != nil {
			return err
		}
		fmt.Println("Session cleared.")
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// openStore picks the session backend from the environment: SQLite when
// TEMPMAIL_SESSION_DB is set, a JSON file otherwise.
func openStore() (sessionstore.Store, error) {
	if dbPath := os.Getenv("TEMPMAIL_SESSION_DB"); dbPath != "" {
		return sessionstore.OpenSQLite(dbPath)
	}
	path := os.Getenv("TEMPMAIL_SESSION_FILE")
	if path == "" {
		path = "sessions.json"
	}
	return sessionstore.OpenFile(path)
}

// newMailbox provisions an address for user. Provisioning is
// create-once: a user with a live session gets their existing address
// back instead of a fresh mailbox.
func newMailbox(ctx context.Context, client *driftmail.Client, store sessionstore.Store, user string, logger *zap.Logger) error {
	if cred, ok, err := store.Get(user); err != nil {
		return err
	} else if ok {
		fmt.Printf("You already have a mailbox: %s\n", cred.Address)
		return nil
	}

	account, err := client.CreateAccount(ctx)
	if err != nil {
		return err
	}
	if err := store.Put(user, account.Credential()); err != nil {
		return err
	}

	logger.Info("mailbox provisioned",
		zap.String("user", user),
		zap.String("address", account.Address()))
	fmt.Printf("Your temp email is ready: %s\n", account.Address())
	return nil
}

func showInbox(ctx context.Context, client *driftmail.Client, store sessionstore.Store, user string) error {
	account, err := userAccount(client, store, user)
	if err != nil {
		return err
	}

	messages, err := account.Messages(ctx)
	if err != nil {
		return err
	}

	fmt.Println(renderInbox(messages))
	return nil
}

func readMessage(ctx context.Context, client *driftmail.Client, store sessionstore.Store, user, messageID string) error {
	account, err := userAccount(client, store, user)
	if err != nil {
		return err
	}

	fmt.Println(renderBody(account.MessageBody(ctx, messageID)))
	return nil
}

func userAccount(client *driftmail.Client, store sessionstore.Store, user string) (*driftmail.Account, error) {
	cred, ok, err := store.Get(user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no mailbox for %q; run: tempmail new %s", user, user)
	}
	return client.AccountFromCredential(cred), nil
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
