package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestSetPurchased_FirstMatchOnly(t *testing.T) {
	items := []GroceryItem{
		{Name: "milk", Quantity: 1},
		{Name: "bread", Quantity: 2},
		{Name: "milk", Quantity: 3},
	}
	if !SetPurchased(items, "milk", true) {
		t.Fatalf("expected match")
	}
	if !items[0].Purchased || items[2].Purchased || items[1].Purchased {
		t.Fatalf("unexpected purchased flags: %+v", items)
	}
	if SetPurchased(items, "eggs", true) {
		t.Fatalf("expected no match for eggs")
	}
}

func TestRemoveItems_AllMatches(t *testing.T) {
	items := []GroceryItem{{Name: "milk"}, {Name: "bread"}, {Name: "milk"}}
	out, n := RemoveItems(items, "milk")
	if n != 2 || len(out) != 1 || out[0].Name != "bread" {
		t.Fatalf("unexpected result: n=%d out=%+v", n, out)
	}
	out, n = RemoveItems(out, "eggs")
	if n != 0 || len(out) != 1 {
		t.Fatalf("unexpected result for missing name: n=%d out=%+v", n, out)
	}
}

func TestClone_Independent(t *testing.T) {
	l := &GroceryList{ID: "x", Title: "Weekly", Items: []GroceryItem{{Name: "milk", Quantity: 2}}}
	c := l.Clone()
	c.Items[0].Quantity = 9
	if l.Items[0].Quantity != 2 {
		t.Fatalf("clone shares items with original")
	}
	empty := (&GroceryList{}).Clone()
	if empty.Items == nil {
		t.Fatalf("clone should normalise nil items to empty slice")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("get: %w", NewStorageError("find", cause))
	if !errors.Is(err, ErrStorage) || !errors.Is(err, cause) {
		t.Fatalf("storage error should match ErrStorage and its cause: %v", err)
	}
	if NewStorageError("find", nil) != nil {
		t.Fatalf("nil cause should produce nil error")
	}

	var ve *ValidationError
	verr := NewValidationError("title", "is required")
	if !errors.Is(verr, ErrValidation) || !errors.As(verr, &ve) || ve.Field != "title" {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if verr.Error() != "title is required" {
		t.Fatalf("unexpected message: %q", verr.Error())
	}

	if !IsNotFound(ErrInvalidIdentifier) || !IsNotFound(fmt.Errorf("x: %w", ErrNotFound)) || IsNotFound(err) {
		t.Fatalf("IsNotFound classification wrong")
	}
}
