// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package httpx builds the single HTTP client every provider backend issues
// its raw requests through, so retries and the user-agent header stay
// consistent across all three backends.
package httpx

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// UserAgent is sent on every request this client issues.
const UserAgent = "toolman/1.0"

// NewClient returns a plain *http.Client backed by a retrying transport
// with a fixed user-agent header.
func NewClient() *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.HTTPClient.Transport = &userAgentTransport{
		inner: retryClient.HTTPClient.Transport,
	}
	return retryClient.StandardClient()
}

type userAgentTransport struct {
	inner http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)

	inner := t.inner
	if inner == nil {
		inner = http.DefaultTransport
	}
	return inner.RoundTrip(req)
}

// RequestFailedError preserves the offending URL for diagnostics when a
// request could not even be completed.
type RequestFailedError struct {
	URL string
	Err error
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}

// UnexpectedBodyError preserves the URL and raw response body when a
// request succeeded but its payload failed to parse.
type UnexpectedBodyError struct {
	URL  string
	Body string
	Err  error
}

func (e *UnexpectedBodyError) Error() string {
	return fmt.Sprintf("unexpected response body from %s: %s", e.URL, e.Err)
}

func (e *UnexpectedBodyError) Unwrap() error {
	return e.Err
}
