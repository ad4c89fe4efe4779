package facade_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kaigouthro/pinelint/internal/facade"
	"github.com/kaigouthro/pinelint/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := facade.NewService(facade.DefaultConfig(), &testutil.DummyLogger{})
	ts := httptest.NewServer(svc.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postSource(t *testing.T, ts *httptest.Server, query, source string) *http.Response {
	t.Helper()
	form := url.Values{"source": {source}}
	resp, err := http.Post(
		ts.URL+"/pine-facade/translate_light"+query,
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding reply: %v", err)
	}
	return out
}

func TestTranslate_CleanSource(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postSource(t, ts, "", "//@version=5\nindicator(\"x\")\nplot(close)")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	out := decode(t, resp)
	if out["success"] != true {
		t.Errorf("expected success, got %v", out)
	}
	if out["id"] == "" || out["id"] == nil {
		t.Errorf("expected a response id, got %v", out["id"])
	}
}

func TestTranslate_MissingVersionDirective(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	out := decode(t, postSource(t, ts, "", "plot(close)"))
	issues, _ := out["result"].([]any)
	if len(issues) != 1 {
		t.Fatalf("expected one issue, got %v", out)
	}
	issue := issues[0].(map[string]any)
	if issue["severity"] != "warning" || !strings.Contains(issue["message"].(string), "//@version=") {
		t.Errorf("expected version warning, got %v", issue)
	}
	if out["success"] != true {
		t.Errorf("warnings alone should not fail the lint, got %v", out)
	}
}

func TestTranslate_UnbalancedBracket(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	out := decode(t, postSource(t, ts, "", "//@version=5\nplot(close\n"))
	if out["success"] != false {
		t.Fatalf("expected failure for unbalanced source, got %v", out)
	}
	issues, _ := out["result"].([]any)
	found := false
	for _, raw := range issues {
		issue := raw.(map[string]any)
		if issue["severity"] == "error" && issue["line"] == float64(2) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a line-2 error issue, got %v", issues)
	}
}

func TestTranslate_EmptySource(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp := postSource(t, ts, "", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty source, got %d", resp.StatusCode)
	}
	out := decode(t, resp)
	if out["success"] != false || !strings.Contains(out["reason"].(string), "empty") {
		t.Errorf("expected empty-source reason, got %v", out)
	}
}

func TestTranslate_Modes(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	plain := postSource(t, ts, "?mode=plain", "plot(close)")
	if ct := plain.Header.Get("Content-Type"); !strings.Contains(ct, "text/plain") {
		t.Errorf("plain mode: expected text/plain, got %q", ct)
	}

	fail := postSource(t, ts, "?mode=fail", "plot(close)")
	if fail.StatusCode != http.StatusInternalServerError {
		t.Errorf("fail mode: expected 500, got %d", fail.StatusCode)
	}

	garbage := postSource(t, ts, "?mode=garbage", "plot(close)")
	if ct := garbage.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("garbage mode: expected declared JSON, got %q", ct)
	}
	var v any
	if err := json.NewDecoder(garbage.Body).Decode(&v); err == nil {
		t.Errorf("garbage mode body should not decode as JSON")
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}
