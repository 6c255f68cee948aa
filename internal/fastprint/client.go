// Package fastprint talks to the Fastprint recruitment API, the upstream
// source of product records.
package fastprint

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-product-catalog/internal/config"
)

// NetworkError wraps transport-level failures (unreachable host, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "fastprint: request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ResponseError covers non-2xx statuses, malformed bodies, and error
// envelopes the API returns with a 200.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fastprint: unexpected status %d", e.StatusCode)
	}
	return "fastprint: " + e.Message
}

// Record is one upstream product row. All fields are kept as strings; the
// importer decides what parses and what gets skipped.
type Record struct {
	ExternalID string
	Name       string
	Price      string
	Category   string
	Status     string
}

// flexString decodes both JSON strings and bare numbers. The upstream API
// sends id_produk as a number but harga as a string, and has been seen doing
// the reverse.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	*s = flexString(string(b))
	return nil
}

type envelope struct {
	Error flexString   `json:"error"`
	Ket   string       `json:"ket"`
	Data  []wireRecord `json:"data"`
}

type wireRecord struct {
	ID       flexString `json:"id_produk"`
	Name     flexString `json:"nama_produk"`
	Price    flexString `json:"harga"`
	Category flexString `json:"kategori"`
	Status   flexString `json:"status"`
}

type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL: cfg.FastprintBaseURL,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		now:     time.Now,
	}
}

// Credentials derives the username/password pair the API expects from the
// current date. Username: tesprogrammer{DD}{MM}{YY}C10. Password:
// MD5("bisacoding-{D}-{M}-{YY}") with no zero padding in the plaintext.
func (c *Client) Credentials() (string, string) {
	now := c.now()
	username := fmt.Sprintf("tesprogrammer%sC10", now.Format("020106"))
	plain := fmt.Sprintf("bisacoding-%d-%d-%d", now.Day(), int(now.Month()), now.Year()%100)
	password := fmt.Sprintf("%x", md5.Sum([]byte(plain)))
	return username, password
}

// Fetch issues a single form-encoded POST and returns the decoded record
// set. No retries; the import workflow is re-run manually.
func (c *Client) Fetch(ctx context.Context) ([]Record, error) {
	username, password := c.Credentials()
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{StatusCode: resp.StatusCode}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &ResponseError{Message: "malformed response body: " + err.Error()}
	}
	if env.Error == "1" {
		msg := env.Ket
		if msg == "" {
			msg = "unknown API error"
		}
		return nil, &ResponseError{Message: msg}
	}

	records := make([]Record, 0, len(env.Data))
	for _, w := range env.Data {
		records = append(records, Record{
			ExternalID: string(w.ID),
			Name:       string(w.Name),
			Price:      string(w.Price),
			Category:   string(w.Category),
			Status:     string(w.Status),
		})
	}
	return records, nil
}
