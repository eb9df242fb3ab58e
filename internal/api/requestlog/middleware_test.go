package requestlog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	h := Middleware(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var line map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("access log is not one JSON line: %q (%v)", buf.String(), err)
	}
	return w, line
}

func TestMiddleware_AccessLog(t *testing.T) {
	w, line := serve(t, httptest.NewRequest(http.MethodPost, "/grocery-lists/", nil))

	id := w.Header().Get(HeaderRequestID)
	if id == "" {
		t.Fatalf("missing %s header", HeaderRequestID)
	}
	if line["req_id"] != id {
		t.Fatalf("req_id = %v, want %s", line["req_id"], id)
	}
	if line["method"] != "POST" || line["url"] != "/grocery-lists/" {
		t.Fatalf("unexpected request fields: %v", line)
	}
	if line["status"] != float64(http.StatusCreated) || line["size"] != float64(2) {
		t.Fatalf("unexpected response fields: %v", line)
	}
}

func TestMiddleware_ReusesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w, line := serve(t, req)
	if w.Header().Get(HeaderRequestID) != "abc-123" || line["req_id"] != "abc-123" {
		t.Fatalf("request id not propagated: header=%q log=%v", w.Header().Get(HeaderRequestID), line["req_id"])
	}
}
