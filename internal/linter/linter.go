package linter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/kaigouthro/pinelint/internal/interfaces"
	"github.com/kaigouthro/pinelint/internal/logging"
	"github.com/kaigouthro/pinelint/internal/model"
)

// Client submits Pine scripts to the lint facade and decodes its reply.
// It holds no state between calls; every Lint builds a fresh request with
// its own deadline, so concurrent calls are independent.
type Client struct {
	cfg    Config
	wc     interfaces.WebClient
	logger interfaces.Logger
}

// New creates a Client over the given webclient. Zero-value config fields
// fall back to the built-in defaults.
func New(cfg Config, wc interfaces.WebClient, logger interfaces.Logger) (*Client, error) {
	if wc == nil {
		return nil, fmt.Errorf("linter: webclient is nil")
	}
	if logger == nil {
		logger = logging.NewStderrLogger("LintClient")
	}
	return &Client{
		cfg:    cfg.withDefaults(),
		wc:     wc,
		logger: logger,
	}, nil
}

// Lint submits scriptText and returns the service's decoded diagnostics
// document, verbatim. Every failure comes back as *Error and is also
// emitted as a one-line diagnostic on the logger; nothing is retried and
// nothing escapes as a panic.
func (c *Client) Lint(ctx context.Context, scriptText string) (res model.Result, err error) {
	log := c.logger.With(interfaces.Field{Key: "request_id", Value: uuid.NewString()})

	defer func() {
		if r := recover(); r != nil {
			lerr := errf(KindUnknown, nil, "unexpected failure: %v", r)
			log.Error("lint failed", interfaces.Field{Key: "error", Value: lerr.Error()})
			res, err = nil, lerr
		}
	}()

	if strings.TrimSpace(scriptText) == "" {
		return nil, c.fail(log, errf(KindInvalidInput, nil, "script content cannot be empty"))
	}

	form := url.Values{"source": {scriptText}}
	headers := http.Header{}
	headers.Set("User-Agent", c.cfg.Identity)
	headers.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")
	headers.Set("Accept", "application/json, text/plain, */*")
	headers.Set("Origin", serviceOrigin)
	headers.Set("Referer", serviceReferer)

	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, doErr := c.wc.Do(reqCtx, &model.Request{
		Method:  http.MethodPost,
		URL:     c.cfg.Endpoint,
		Headers: headers,
		Body:    []byte(form.Encode()),
	})
	if doErr != nil {
		return nil, c.fail(log, errf(KindTransport, doErr, "request to %s did not complete", c.cfg.Endpoint))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.fail(log, errf(KindHTTPStatus, nil, "%d - %s", resp.StatusCode, preview(resp.Body)))
	}

	contentType := resp.Headers.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		lerr := errf(KindUnexpectedContentType, nil, "content type %q: %s", contentType, preview(resp.Body))
		extra := []interfaces.Field{}
		if title := htmlTitle(resp.Body); title != "" {
			extra = append(extra, interfaces.Field{Key: "page_title", Value: title})
		}
		return nil, c.fail(log, lerr, extra...)
	}

	var out model.Result
	if decErr := json.Unmarshal(resp.Body, &out); decErr != nil {
		return nil, c.fail(log, errf(KindMalformedResponse, decErr, "response text: %s", preview(resp.Body)))
	}

	log.Info("lint completed",
		interfaces.Field{Key: "status", Value: resp.StatusCode},
		interfaces.Field{Key: "result_keys", Value: len(out)})
	return out, nil
}

// fail emits the one-line diagnostic and hands the error back to the caller.
func (c *Client) fail(log interfaces.Logger, lerr *Error, extra ...interfaces.Field) *Error {
	fields := append([]interfaces.Field{
		{Key: "kind", Value: lerr.Kind.String()},
		{Key: "error", Value: lerr.Error()},
	}, extra...)
	log.Error("lint failed", fields...)
	return lerr
}

// preview clamps a response body for inclusion in diagnostics.
func preview(body []byte) string {
	s := string(body)
	if len(s) > bodyPreviewLimit {
		return s[:bodyPreviewLimit]
	}
	return s
}

// htmlTitle pulls the <title> out of an HTML error page, if there is one.
// Block pages and proxy errors usually name themselves there.
func htmlTitle(body []byte) string {
	if !bytes.Contains(bytes.ToLower(body), []byte("<html")) {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
