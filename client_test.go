package driftmail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

// fakeService is a minimal upstream: one active domain, accepts any
// registration, issues a fixed token.
func fakeService(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[{"id":"1","domain":"indigobook.com","isActive":true}]}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Address, Password string }
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode /accounts body: %v", err)
		}
		if body.Address == "" || body.Password == "" {
			t.Error("registration missing address or password")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "acc-1", "address": body.Address})
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"jwt-abc","id":"acc-1"}`))
	})
	return mux
}

func TestNew_DefaultBaseURL(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.apiClient.BaseURL() != defaultBaseURL {
		t.Errorf("base URL = %s, want %s", client.apiClient.BaseURL(), defaultBaseURL)
	}
}

func TestNew_WithOptions(t *testing.T) {
	httpClient := &http.Client{Timeout: 5 * time.Second}
	client, err := New(
		WithBaseURL("https://example.com"),
		WithHTTPClient(httpClient),
		WithRetries(2),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.apiClient.BaseURL() != "https://example.com" {
		t.Errorf("base URL = %s, want https://example.com", client.apiClient.BaseURL())
	}
}

func TestCreateAccount(t *testing.T) {
	client := newTestClient(t, fakeService(t))

	account, err := client.CreateAccount(context.Background())
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}

	cred := account.Credential()
	local, domain, found := strings.Cut(cred.Address, "@")
	if !found {
		t.Fatalf("address %q is not local@domain", cred.Address)
	}
	if domain != "indigobook.com" {
		t.Errorf("domain = %s, want indigobook.com", domain)
	}
	if !strings.HasPrefix(local, localPartPrefix) {
		t.Errorf("local part = %s, want %s prefix", local, localPartPrefix)
	}
	if len(local) < localPartRandLen {
		t.Errorf("local part %q shorter than %d random chars", local, localPartRandLen)
	}
	if len(cred.Password) < 12 {
		t.Errorf("password length = %d, want >= 12", len(cred.Password))
	}
	if cred.Token != "jwt-abc" {
		t.Errorf("token = %s, want jwt-abc", cred.Token)
	}
}

func TestCreateAccount_UniqueAddresses(t *testing.T) {
	client := newTestClient(t, fakeService(t))

	a, err := client.CreateAccount(context.Background())
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	b, err := client.CreateAccount(context.Background())
	if err != nil {
		t.Fatalf("CreateAccount() error = %v", err)
	}
	if a.Address() == b.Address() {
		t.Errorf("two accounts share address %s", a.Address())
	}
}

func TestCreateAccount_NoDomains(t *testing.T) {
	var registrations int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[]}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&registrations, 1)
	})
	client := newTestClient(t, mux)

	_, err := client.CreateAccount(context.Background())
	if !errors.Is(err, ErrNoDomainsAvailable) {
		t.Fatalf("error = %v, want ErrNoDomainsAvailable", err)
	}
	if atomic.LoadInt32(&registrations) != 0 {
		t.Error("registration attempted despite empty domain list")
	}
}

func TestCreateAccount_NoActiveDomains(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[{"id":"1","domain":"dead.example","isActive":false}]}`))
	})
	client := newTestClient(t, mux)

	if _, err := client.CreateAccount(context.Background()); !errors.Is(err, ErrNoDomainsAvailable) {
		t.Fatalf("error = %v, want ErrNoDomainsAvailable", err)
	}
}

func TestCreateAccount_DomainFetchFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	client := newTestClient(t, mux)

	if _, err := client.CreateAccount(context.Background()); !errors.Is(err, ErrNoDomainsAvailable) {
		t.Fatalf("error = %v, want ErrNoDomainsAvailable", err)
	}
}

func TestCreateAccount_RegistrationFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[{"id":"1","domain":"indigobook.com","isActive":true}]}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"hydra:description":"address: This value is already used."}`))
	})
	client := newTestClient(t, mux)

	if _, err := client.CreateAccount(context.Background()); !errors.Is(err, ErrAccountCreationFailed) {
		t.Fatalf("error = %v, want ErrAccountCreationFailed", err)
	}
}

func TestCreateAccount_LoginFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[{"id":"1","domain":"indigobook.com","isActive":true}]}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"acc-1"}`))
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials."}`))
	})
	client := newTestClient(t, mux)

	if _, err := client.CreateAccount(context.Background()); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("error = %v, want ErrLoginFailed", err)
	}
}

func TestCreateAccount_EmptyToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"hydra:member":[{"id":"1","domain":"indigobook.com","isActive":true}]}`))
	})
	mux.HandleFunc("POST /accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"acc-1"}`))
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"acc-1"}`))
	})
	client := newTestClient(t, mux)

	if _, err := client.CreateAccount(context.Background()); !errors.Is(err, ErrLoginFailed) {
		t.Fatalf("error = %v, want ErrLoginFailed", err)
	}
}

func TestAccountFromCredential(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cred := Credential{Address: "user1@indigobook.com", Password: "pw", Token: "jwt"}
	account := client.AccountFromCredential(cred)

	if account.Address() != "user1@indigobook.com" {
		t.Errorf("Address() = %s, want user1@indigobook.com", account.Address())
	}
	if account.Credential() != cred {
		t.Errorf("Credential() = %+v, want %+v", account.Credential(), cred)
	}
}
