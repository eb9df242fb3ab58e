package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError_Body(t *testing.T) {
	w := httptest.NewRecorder()
	WriteNotFound(w, "Grocery list not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "Not Found" || body.Code != 404 || body.Message != "Grocery list not found" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestWriteMessage_OmitsEmptyID(t *testing.T) {
	w := httptest.NewRecorder()
	WriteMessage(w, "Item status updated")

	var raw map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if raw["message"] != "Item status updated" {
		t.Fatalf("unexpected message: %v", raw)
	}
	if _, ok := raw["id"]; ok {
		t.Fatalf("id should be omitted: %v", raw)
	}
}
