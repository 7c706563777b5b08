package mailer

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/innovshop/marketplace/internal/config"
	"github.com/innovshop/marketplace/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("://bad", "key", "from@example.com", discardLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewClient("relative/path", "key", "from@example.com", discardLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}

	client, err := NewClient("", "key", "from@example.com", discardLogger())
	if err != nil {
		t.Fatalf("empty base url should be allowed: %v", err)
	}
	if client.baseURL != nil {
		t.Fatal("expected disabled client")
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	var (
		gotPath   string
		gotAPIKey string
		gotMsg    message
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotMsg); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "secret-key", "orders@example.com", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	order := &model.Order{
		Reference:   "ORD-2025-AAA",
		TotalAmount: decimal.RequireFromString("100.00"),
		Items:       []model.OrderItem{{ProductName: "Lamp", Quantity: 1}},
	}
	if !client.SendOrderConfirmation(context.Background(), order, "buyer@example.com") {
		t.Fatal("expected send to succeed")
	}

	if gotPath != "/v3/smtp/email" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAPIKey != "secret-key" {
		t.Fatalf("unexpected api key %q", gotAPIKey)
	}
	if gotMsg.To != "buyer@example.com" || gotMsg.Sender != "orders@example.com" {
		t.Fatalf("unexpected addressing: %+v", gotMsg)
	}
	if gotMsg.Subject != "Order confirmation ORD-2025-AAA" {
		t.Fatalf("unexpected subject %q", gotMsg.Subject)
	}
}

func TestSendSellerApprovalNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "key", "noreply@example.com", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	seller := &model.Seller{ShopName: "Atelier Nord"}
	if !client.SendSellerApprovalNotification(context.Background(), seller, "seller@example.com") {
		t.Fatal("expected send to succeed")
	}
}

func TestSendReportsAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "key", "noreply@example.com", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	order := &model.Order{Reference: "ORD-1", TotalAmount: decimal.Zero}
	if client.SendOrderConfirmation(context.Background(), order, "buyer@example.com") {
		t.Fatal("expected rejected send to report failure")
	}
}

func TestDisabledClientDropsMail(t *testing.T) {
	client, err := NewClient("", "", "noreply@example.com", discardLogger())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	order := &model.Order{Reference: "ORD-1", TotalAmount: decimal.Zero}
	if client.SendOrderConfirmation(context.Background(), order, "buyer@example.com") {
		t.Fatal("expected disabled client to report failure")
	}
}

func TestNewClientFromConfig(t *testing.T) {
	client, err := newClient(clientParams{
		Config: &config.Config{MailAPIAddress: "http://mail.local", MailAPIKey: "k", MailSender: "s@example.com"},
		Logger: discardLogger(),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.sender != "s@example.com" || client.apiKey != "k" {
		t.Fatalf("config not applied: %+v", client)
	}
}
