package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

// HTTPClient is the shared JSON-over-HTTP client the feed clients build on.
// Default headers set once (an API key, typically) go out with every
// request; per-call headers override them.
type HTTPClient struct {
	BaseURL        string
	HTTPClient     *http.Client
	defaultHeaders map[string]string
}

// NewHTTPClient creates a client for the given base URL with the request
// timeout applied.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		defaultHeaders: make(map[string]string),
	}
}

// SetDefaultHeader attaches a header to every subsequent request. An empty
// value removes the header instead.
func (c *HTTPClient) SetDefaultHeader(key, value string) {
	if value == "" {
		delete(c.defaultHeaders, key)
		return
	}
	c.defaultHeaders[key] = value
}

// Request performs a JSON request against the base URL and, when response is
// non-nil, decodes the body into it. Non-2xx responses come back as errors.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = jsonBody
	}

	req, err := http.NewRequest(method, c.BaseURL+endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range c.defaultHeaders {
		req.Header.Set(key, value)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %s", res.Status)
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}
	return nil
}
