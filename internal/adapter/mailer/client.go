package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/innovshop/marketplace/internal/domain/model"
)

// Client sends transactional email through an HTTP mail API. A zero-valued
// base URL disables sending: every call reports failure and the caller's
// log-and-continue policy applies.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	sender     string
	httpClient *http.Client
	logger     *slog.Logger
}

type message struct {
	Sender   string `json:"sender"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	TextBody string `json:"textContent"`
}

// NewClient creates the mail client. An empty baseURL is allowed and yields a
// disabled client.
func NewClient(baseURL, apiKey, sender string, logger *slog.Logger) (*Client, error) {
	c := &Client{
		apiKey: apiKey,
		sender: sender,
		logger: logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	if baseURL == "" {
		logger.Warn("mail API not configured, outgoing email disabled")
		return c, nil
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail api url must be absolute")
	}
	c.baseURL = parsed
	return c, nil
}

// SendOrderConfirmation emails the buyer a summary of the confirmed order.
func (c *Client) SendOrderConfirmation(ctx context.Context, order *model.Order, email string) bool {
	body := fmt.Sprintf(
		"Your order %s has been confirmed.\n\nTotal: %s EUR\nItems: %d\n\nThank you for shopping with us.",
		order.Reference, order.TotalAmount.StringFixed(2), len(order.Items),
	)
	return c.send(ctx, message{
		Sender:   c.sender,
		To:       email,
		Subject:  fmt.Sprintf("Order confirmation %s", order.Reference),
		TextBody: body,
	})
}

// SendSellerApprovalNotification emails a seller whose shop was approved.
func (c *Client) SendSellerApprovalNotification(ctx context.Context, seller *model.Seller, email string) bool {
	body := fmt.Sprintf(
		"Congratulations! Your shop %q has been approved.\nYou can now publish products and receive orders.",
		seller.ShopName,
	)
	return c.send(ctx, message{
		Sender:   c.sender,
		To:       email,
		Subject:  "Your seller account has been approved",
		TextBody: body,
	})
}

func (c *Client) send(ctx context.Context, msg message) bool {
	if c.baseURL == nil {
		c.logger.Warn("mail API not configured, dropping email", slog.String("subject", msg.Subject))
		return false
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("encode mail payload failed", slog.String("error", err.Error()))
		return false
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v3/smtp/email")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("build mail request failed", slog.String("error", err.Error()))
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("mail request failed", slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("mail API rejected message",
			slog.Int("status", resp.StatusCode),
			slog.String("subject", msg.Subject),
		)
		return false
	}

	c.logger.Info("email sent", slog.String("subject", msg.Subject))
	return true
}
