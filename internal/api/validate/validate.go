// Package validate decodes request payloads into typed values and rejects malformed ones
// before they reach the store.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// ItemPayload is the wire shape of a GroceryItem; pointers detect missing fields.
type ItemPayload struct {
	Name      *string `json:"name"`
	Quantity  *int    `json:"quantity"`
	Purchased *bool   `json:"purchased"`
}

// ListPayload is the wire shape of a create/replace request.
type ListPayload struct {
	Title *string        `json:"title"`
	Items *[]ItemPayload `json:"items"`
}

// PurchasedPayload is the optional body of the item status update.
type PurchasedPayload struct {
	Purchased *bool `json:"purchased"`
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return model.NewValidationError(typeErr.Field, fmt.Sprintf("must be %s", typeErr.Type))
		}
		if errors.Is(err, io.EOF) {
			return model.NewValidationError("", "request body is required")
		}
		return model.NewValidationError("", "invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.NewValidationError("", "invalid JSON")
	}
	return nil
}

// boolWords are the accepted spellings of a boolean query value, lower-cased.
var boolWords = map[string]bool{
	"1": true, "true": true, "t": true, "yes": true, "y": true, "on": true,
	"0": false, "false": false, "f": false, "no": false, "n": false, "off": false,
}

func parseBool(s string) (bool, bool) {
	v, ok := boolWords[strings.ToLower(strings.TrimSpace(s))]
	return v, ok
}

// Item validates one item payload. field prefixes error messages (e.g. "items[2]").
func Item(field string, p ItemPayload) (model.GroceryItem, error) {
	if p.Name == nil {
		return model.GroceryItem{}, model.NewValidationError(field+"name", "is required")
	}
	if *p.Name == "" {
		return model.GroceryItem{}, model.NewValidationError(field+"name", "must not be empty")
	}
	if p.Quantity == nil {
		return model.GroceryItem{}, model.NewValidationError(field+"quantity", "is required")
	}
	it := model.GroceryItem{Name: *p.Name, Quantity: *p.Quantity}
	if p.Purchased != nil {
		it.Purchased = *p.Purchased
	}
	return it, nil
}

// List validates a create/replace payload.
func List(p ListPayload) (string, []model.GroceryItem, error) {
	if p.Title == nil {
		return "", nil, model.NewValidationError("title", "is required")
	}
	if p.Items == nil {
		return "", nil, model.NewValidationError("items", "is required")
	}
	items := make([]model.GroceryItem, 0, len(*p.Items))
	for i, ip := range *p.Items {
		it, err := Item(fmt.Sprintf("items[%d].", i), ip)
		if err != nil {
			return "", nil, err
		}
		items = append(items, it)
	}
	return *p.Title, items, nil
}

// DecodeList reads and validates a {title, items[]} body.
func DecodeList(r *http.Request) (string, []model.GroceryItem, error) {
	var p ListPayload
	if err := decode(r, &p); err != nil {
		return "", nil, err
	}
	return List(p)
}

// DecodeItem reads and validates a GroceryItem body.
func DecodeItem(r *http.Request) (model.GroceryItem, error) {
	var p ItemPayload
	if err := decode(r, &p); err != nil {
		return model.GroceryItem{}, err
	}
	return Item("", p)
}

// Purchased reads the purchased flag from the query string, falling back to a JSON body.
func Purchased(r *http.Request) (bool, error) {
	if raw, ok := r.URL.Query()["purchased"]; ok && len(raw) > 0 {
		v, ok := parseBool(raw[0])
		if !ok {
			return false, model.NewValidationError("purchased", "must be a boolean")
		}
		return v, nil
	}
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return false, model.NewValidationError("purchased", "is required")
	}
	var p PurchasedPayload
	if err := decode(r, &p); err != nil {
		return false, err
	}
	if p.Purchased == nil {
		return false, model.NewValidationError("purchased", "is required")
	}
	return *p.Purchased, nil
}
