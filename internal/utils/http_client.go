package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://127.0.0.1:8090/api/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with retries disabled: the record
// store layer reports a failed request to the caller right away, and any
// retry policy belongs to the caller.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetRetryCount(0)}
}
