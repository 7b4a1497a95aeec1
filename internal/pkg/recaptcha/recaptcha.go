package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultVerifyURL is Google's reCAPTCHA v3 verification endpoint. Tests point
// the client at a local stand-in.
const DefaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// MinScore is the lowest confidence score accepted for a human.
const MinScore = 0.5

// Result is the verification response body.
type Result struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	ErrorCodes []string `json:"error-codes"`
}

// Client verifies reCAPTCHA tokens against the configured endpoint.
type Client struct {
	secret    string
	verifyURL string
	http      *http.Client
}

func New(secret, verifyURL string) *Client {
	if verifyURL == "" {
		verifyURL = DefaultVerifyURL
	}
	return &Client{
		secret:    secret,
		verifyURL: verifyURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify checks a client token. The boolean is true only when the provider
// reports success with a score at or above MinScore; a non-nil error means the
// verification call itself failed.
func (c *Client) Verify(ctx context.Context, token string) (bool, *Result, error) {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return false, nil, err
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, nil, fmt.Errorf("decode verification response: %w", err)
	}
	return result.Success && result.Score >= MinScore, &result, nil
}
