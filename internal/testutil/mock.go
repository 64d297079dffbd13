// Package testutil provides testing utilities for the tempo project.
package testutil

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc adapts a function to http.RoundTripper so HTTP-backed
// services can be stubbed without a live server.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Response builds an *http.Response with the given status code and body.
func Response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}
