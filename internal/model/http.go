package model

import (
	"net/http"
	"time"
)

// Request is a transport-agnostic description of an outbound HTTP request.
type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

// Response carries the fully-read reply. Lint replies are small, so the
// whole body is held in memory.
type Response struct {
	Request    *Request
	Headers    http.Header
	Body       []byte
	StatusCode int
	FetchedAt  time.Time
}
