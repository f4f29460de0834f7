// Package fetch retrieves the upstream calendar sources over HTTPS.
package fetch

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// UserAgent is sent on every request. The federal sites serve these
	// documents to ordinary browsers, so the client identifies as one.
	UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0 Safari/537.36"
	// Accept covers the ICS feeds and the HTML calendar page.
	Accept = "text/calendar,text/plain,*/*"
	// Timeout for HTTP requests
	Timeout = 30 * time.Second
)

// Client fetches source documents. Each source is requested exactly once
// per run; there are no retries and no caching.
type Client struct {
	client *http.Client
}

// New creates a Client with the default timeout.
func New() *Client {
	return &Client{
		client: &http.Client{Timeout: Timeout},
	}
}

func (c *Client) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", Accept)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	return body, nil
}

// Text fetches a document and returns the whole body.
func (c *Client) Text(url string) (string, error) {
	body, err := c.get(url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Lines fetches a document and splits it into lines. Both CRLF and LF
// endings are accepted; the returned lines carry neither.
func (c *Client) Lines(url string) ([]string, error) {
	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("splitting body of %s: %w", url, err)
	}
	return lines, nil
}
