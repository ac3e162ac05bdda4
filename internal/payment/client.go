package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Gateway is the outbound boundary to the payment backend. Order placement
// depends on this interface so tests can substitute a stub.
type Gateway interface {
	CreatePayment(ctx context.Context, req CreateRequest) (Response, error)
	GetPayment(ctx context.Context, referenceID string) (Response, error)
}

// Client talks HTTP to the payment backend. Errors coming back from the
// backend are reduced to a single human-readable message for the UI; no retry
// is performed here.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreatePayment(ctx context.Context, req CreateRequest) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/payments", bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("payment backend unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Response{}, backendError(res)
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("invalid payment backend response: %w", err)
	}
	return out, nil
}

func (c *Client) GetPayment(ctx context.Context, referenceID string) (Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/payments/"+url.PathEscape(referenceID), nil)
	if err != nil {
		return Response{}, err
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("payment backend unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Response{}, backendError(res)
	}

	var out Response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("invalid payment backend response: %w", err)
	}
	return out, nil
}

// ListPayments fetches one dashboard page. status may be empty to list all.
func (c *Client) ListPayments(ctx context.Context, page, size int, status string) (Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if status != "" {
		q.Set("status", status)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/payments?"+q.Encode(), nil)
	if err != nil {
		return Page{}, err
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return Page{}, fmt.Errorf("payment backend unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Page{}, backendError(res)
	}

	var out Page
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Page{}, fmt.Errorf("invalid payment backend response: %w", err)
	}
	return out, nil
}

// backendError extracts the backend's message field when present, falling back
// to the HTTP status.
func backendError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return fmt.Errorf("payment backend: %s", payload.Message)
	}
	return fmt.Errorf("payment backend: unexpected status %d", res.StatusCode)
}
