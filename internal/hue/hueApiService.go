package hue

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huelib/internal/constants"
)

// StatusError is returned for HTTP replies outside 2xx. Bridge errors arrive
// with status 200 inside the response list and are not StatusErrors.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// Client sends requests to the v1 API of one bridge.
type Client struct {
	baseURL    string
	username   string
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a client for the bridge at address, either a host
// ("192.168.1.20") reached over https or a full base URL. username is the
// application key; it is empty only for user registration.
func NewClient(address string, username string, logger *log.Logger) *Client {
	baseURL := address
	if !strings.Contains(address, "://") {
		baseURL = "https://" + address
	}

	// the bridge uses a self-signed certificate
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		httpClient: &http.Client{Transport: tr, Timeout: constants.DefaultHTTPTimeout},
		logger:     logger,
	}
}

func (c *Client) GET(ctx context.Context, path string) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodGet, path, nil)
}

func (c *Client) PUT(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodPut, path, body)
}

func (c *Client) POST(ctx context.Context, path string, body []byte) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodPost, path, body)
}

func (c *Client) DELETE(ctx context.Context, path string) ([]byte, error) {
	return c.makeRequest(ctx, http.MethodDelete, path, nil)
}

func (c *Client) url(path string) string {
	if c.username == "" {
		return c.baseURL + "/api" + path
	}
	return c.baseURL + "/api/" + c.username + path
}

func (c *Client) makeRequest(ctx context.Context, verb string, path string, body []byte) ([]byte, error) {

	url := c.url(path)
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("bridge request", "method", verb, "path", path, "body", string(body))

	// make the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling hue bridge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Error making Hue API call", "method", verb, "path", path, "status", resp.Status)
		return nil, &StatusError{Method: verb, URL: url, StatusCode: resp.StatusCode}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading hue bridge response: %w", err)
	}
	return responseBody, nil
}
