package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/foodorder-cli/internal/domain"
	"github.com/bnema/foodorder-cli/internal/ports"
	"github.com/go-resty/resty/v2"
)

const (
	CurrentUserPath  = "/api/auth/me"
	VNPayConfirmPath = "/api/payments/vnpay/confirm"
	MoMoConfirmPath  = "/api/payments/momo/confirm"

	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 256
	userAgent        = "fo-cli"
)

// Client talks to the food-ordering REST backend.
type Client struct {
	http *resty.Client
}

var _ ports.BackendClient = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{http: httpClient}, nil
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) CurrentIdentity(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, fmt.Errorf("current identity: %w", domain.ErrUnauthorized)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(CurrentUserPath)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("GET %s: %w", CurrentUserPath, err)
	}
	if err := checkStatus(http.MethodGet, CurrentUserPath, resp); err != nil {
		return domain.Identity{}, err
	}

	identity, err := DecodeIdentity(resp.Body())
	if err != nil {
		return domain.Identity{}, fmt.Errorf("GET %s: %w", CurrentUserPath, err)
	}

	return identity, nil
}

func (c *Client) ConfirmVNPayPayment(ctx context.Context, params map[string]string) error {
	return c.confirm(ctx, VNPayConfirmPath, params)
}

func (c *Client) ConfirmMoMoPayment(ctx context.Context, params map[string]string) error {
	return c.confirm(ctx, MoMoConfirmPath, params)
}

func (c *Client) confirm(ctx context.Context, path string, params map[string]string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	return checkStatus(http.MethodPost, path, resp)
}

func checkStatus(method string, path string, resp *resty.Response) error {
	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s %s: status %d: %w", method, path, status, domain.ErrUnauthorized)
	default:
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > maxErrorBodySize {
			body = body[:maxErrorBodySize] + "..."
		}
		if body == "" {
			return fmt.Errorf("%s %s: unexpected status %d", method, path, status)
		}
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, status, body)
	}
}
