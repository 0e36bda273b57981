// Package api is a typed HTTP client for the expense-tracker backend. The
// backend owns all persistence and authorization decisions; this client
// attaches the bearer token, speaks JSON, and maps failures onto the
// application error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	apperrors "spendview/internal/errors"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 32 << 10

// Client talks to the expense-tracker backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do executes one backend call. A non-empty token is attached as a bearer
// credential. A 2xx JSON body is decoded into out when out is non-nil.
//
// Failures map as follows: transport errors become NETWORK_ERROR; on
// authenticated calls a 401 means the session has lapsed and a 403 means
// the role check failed; every other non-2xx becomes an error derived from
// base, carrying the backend's own message when one can be extracted and
// fallback otherwise.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any, base *apperrors.AppError, fallback string) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrValidation, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrNetwork, err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return c.errorFrom(res, token != "", base, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrServer, fallback), err)
	}
	return nil
}

// errorFrom builds the error for a failed response, preferring the
// backend's message over the per-operation fallback.
func (c *Client) errorFrom(res *http.Response, authed bool, base *apperrors.AppError, fallback string) error {
	if authed {
		switch res.StatusCode {
		case http.StatusUnauthorized:
			return apperrors.ErrSessionExpired
		case http.StatusForbidden:
			return apperrors.ErrForbidden
		}
	}

	msg := extractMessage(res.Body)
	if msg == "" {
		msg = fallback
	}
	return apperrors.WithMessage(base, msg)
}

// errorBody is the shape of the backend's problem responses. The errors
// map carries per-field validation messages.
type errorBody struct {
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors"`
}

// extractMessage pulls a human-readable message out of a failed response
// body: detail wins over title, field errors are flattened, and a plain
// text body is used as-is. Returns "" when nothing usable is found.
func extractMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err == nil {
		if len(eb.Errors) > 0 {
			var parts []string
			for _, msgs := range eb.Errors {
				parts = append(parts, msgs...)
			}
			return strings.Join(parts, ", ")
		}
		if eb.Detail != "" {
			return eb.Detail
		}
		if eb.Title != "" {
			return eb.Title
		}
	}

	// The backend sometimes answers with a bare JSON string or plain text.
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		return ""
	}
	return text
}
