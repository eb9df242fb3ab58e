package sqldoc

import (
	"errors"
	"testing"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
)

func TestParseID(t *testing.T) {
	if _, err := parseID("6f1c1e2a-3c1b-4a8e-9f55-6c1e2b0d7a11"); err != nil {
		t.Fatalf("valid uuid rejected: %v", err)
	}
	for _, bad := range []string{"", "abc", "not/a-valid-id", "65f1c2d3e4a5b6c7d8e9f012"} {
		if _, err := parseID(bad); !errors.Is(err, model.ErrInvalidIdentifier) {
			t.Fatalf("parseID(%q): expected ErrInvalidIdentifier, got %v", bad, err)
		}
	}
}

func TestEncodeDecodeItems_EmptyIsArray(t *testing.T) {
	raw, err := encodeItems(nil)
	if err != nil || raw != "[]" {
		t.Fatalf("encodeItems(nil) = %q, %v", raw, err)
	}
	items, err := decodeItems("null")
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("decodeItems(null) = %#v, %v", items, err)
	}
	items, err = decodeItems(`[{"name":"milk","quantity":2,"purchased":true}]`)
	if err != nil || len(items) != 1 || items[0] != (model.GroceryItem{Name: "milk", Quantity: 2, Purchased: true}) {
		t.Fatalf("decodeItems mismatch: %#v, %v", items, err)
	}
}
