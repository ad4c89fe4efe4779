// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/kaigouthro/pinelint/internal/interfaces"
	"github.com/kaigouthro/pinelint/internal/model"
)

// ─── Logger ────────────────────────────────────────────────────────────

// DummyLogger implements interfaces.Logger with in-memory recording.
// Messages land in the per-level slices; field values are folded into the
// recorded string so tests can assert on diagnostic content.
type DummyLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
	Debugs []string
	Warns  []string

	fields []interfaces.Field
}

func (l *DummyLogger) record(dst *[]string, msg string, fields []interfaces.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, f := range l.fields {
		msg += " " + f.Key + "=" + stringify(f.Value)
	}
	for _, f := range fields {
		msg += " " + f.Key + "=" + stringify(f.Value)
	}
	*dst = append(*dst, msg)
}

func (l *DummyLogger) Debug(msg string, fields ...interfaces.Field) {
	l.record(&l.Debugs, msg, fields)
}

func (l *DummyLogger) Info(msg string, fields ...interfaces.Field) {
	l.record(&l.Infos, msg, fields)
}

func (l *DummyLogger) Warn(msg string, fields ...interfaces.Field) {
	l.record(&l.Warns, msg, fields)
}

func (l *DummyLogger) Error(msg string, fields ...interfaces.Field) {
	l.record(&l.Errors, msg, fields)
}

// With shares the same recording slices so a test sees everything its
// component logged, child loggers included.
func (l *DummyLogger) With(fields ...interfaces.Field) interfaces.Logger {
	return &logWrapper{parent: l, fields: fields}
}

type logWrapper struct {
	parent *DummyLogger
	fields []interfaces.Field
}

func (w *logWrapper) all(fields []interfaces.Field) []interfaces.Field {
	return append(append([]interfaces.Field(nil), w.fields...), fields...)
}

func (w *logWrapper) Debug(msg string, fields ...interfaces.Field) {
	w.parent.Debug(msg, w.all(fields)...)
}

func (w *logWrapper) Info(msg string, fields ...interfaces.Field) {
	w.parent.Info(msg, w.all(fields)...)
}

func (w *logWrapper) Warn(msg string, fields ...interfaces.Field) {
	w.parent.Warn(msg, w.all(fields)...)
}

func (w *logWrapper) Error(msg string, fields ...interfaces.Field) {
	w.parent.Error(msg, w.all(fields)...)
}

func (w *logWrapper) With(fields ...interfaces.Field) interfaces.Logger {
	return &logWrapper{parent: w.parent, fields: w.all(fields)}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements interfaces.WebClient. By default it returns an
// empty JSON object with status 200; set Response or Err to override.
type DummyWebClient struct {
	Response      *model.Response
	Err           error
	ResponseDelay time.Duration

	mu       sync.Mutex
	Requests []*model.Request
}

func (d *DummyWebClient) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	if d.ResponseDelay > 0 {
		select {
		case <-time.After(d.ResponseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}

	if d.Response != nil {
		resp := *d.Response
		resp.Request = req
		if resp.FetchedAt.IsZero() {
			resp.FetchedAt = time.Now()
		}
		return &resp, nil
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return &model.Response{
		Request:    req,
		Headers:    headers,
		Body:       []byte("{}"),
		StatusCode: http.StatusOK,
		FetchedAt:  time.Now(),
	}, nil
}

func (d *DummyWebClient) Close() error { return nil }

// CallCount reports how many requests reached the dummy transport.
func (d *DummyWebClient) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Requests)
}

// LastRequest returns the most recent request, or nil.
func (d *DummyWebClient) LastRequest() *model.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Requests) == 0 {
		return nil
	}
	return d.Requests[len(d.Requests)-1]
}

// JSONResponse builds a 200 response declaring and carrying JSON.
func JSONResponse(body string) *model.Response {
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	return &model.Response{
		Headers:    headers,
		Body:       []byte(body),
		StatusCode: http.StatusOK,
	}
}

// TextResponse builds a response with an arbitrary status and content type.
func TextResponse(status int, contentType, body string) *model.Response {
	headers := http.Header{}
	headers.Set("Content-Type", contentType)
	return &model.Response{
		Headers:    headers,
		Body:       []byte(body),
		StatusCode: status,
	}
}
