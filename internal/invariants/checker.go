//
// Invariant contract checks for the grocery list API.
// Uses customer-facing endpoints only (blackbox testing).
// Never mutate invariants to get incremental changes working.
//

package invariants

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AbsentListID is well formed for uuid-keyed stores and never issued by them.
const AbsentListID = "00000000-0000-4000-8000-000000000000"

// InvariantChecker tests system invariants using customer-facing APIs.
// This is a blackbox test that treats the service as an external system.
type InvariantChecker struct {
	baseURL string
	client  *http.Client
}

// NewInvariantChecker creates a new invariant checker
func NewInvariantChecker(baseURL string) *InvariantChecker {
	return &InvariantChecker{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RunAll executes every invariant as a subtest.
func (ic *InvariantChecker) RunAll(t *testing.T) {
	t.Run("CreateThenGetRoundTrip", ic.TestCreateGetRoundTripInvariant)
	t.Run("UnknownIdentifiersAreNotFound", ic.TestUnknownIdentifierInvariant)
	t.Run("ReplaceOverwritesItems", ic.TestReplaceOverwritesInvariant)
	t.Run("AddItemAppendsExactlyOne", ic.TestAddItemInvariant)
	t.Run("UpdateTouchesOnlyPurchased", ic.TestUpdatePurchasedInvariant)
	t.Run("DeleteItemMissLeavesListUnchanged", ic.TestDeleteItemInvariant)
}

// INVARIANT: a created list reads back with the same title and items
func (ic *InvariantChecker) TestCreateGetRoundTripInvariant(t *testing.T) {
	items := []Item{{Name: "milk", Quantity: 2}, {Name: "eggs", Quantity: 12, Purchased: true}}
	id := ic.createList(t, "Weekly", items)

	l := ic.getList(t, id)
	assert.Equal(t, id, l.ID)
	assert.Equal(t, "Weekly", l.Title)
	assert.Equal(t, items, l.Items)
}

// INVARIANT: absent and malformed ids yield 404, never a crash
func (ic *InvariantChecker) TestUnknownIdentifierInvariant(t *testing.T) {
	for _, id := range []string{AbsentListID, "not-a-valid-id", "abc"} {
		ic.makeRequest(t, http.MethodGet, "/grocery-lists/"+url.PathEscape(id), nil, http.StatusNotFound)
		ic.makeRequest(t, http.MethodDelete, "/grocery-lists/"+url.PathEscape(id), nil, http.StatusNotFound)
	}
}

// INVARIANT: replace with empty items leaves zero items
func (ic *InvariantChecker) TestReplaceOverwritesInvariant(t *testing.T) {
	id := ic.createList(t, "Party", []Item{})
	ic.makeRequest(t, http.MethodPost, ic.itemsPath(id), Item{Name: "chips", Quantity: 3}, http.StatusOK)
	ic.makeRequest(t, http.MethodPut, "/grocery-lists/"+id, ListRequest{Title: "Party", Items: []Item{}}, http.StatusOK)

	assert.Empty(t, ic.getList(t, id).Items)
}

// INVARIANT: add item increases the count by exactly one
func (ic *InvariantChecker) TestAddItemInvariant(t *testing.T) {
	id := ic.createList(t, "Weekly", []Item{{Name: "milk", Quantity: 2}})
	before := len(ic.getList(t, id).Items)

	added := Item{Name: "milk", Quantity: 5, Purchased: true}
	ic.makeRequest(t, http.MethodPost, ic.itemsPath(id), added, http.StatusOK)

	after := ic.getList(t, id).Items
	require.Len(t, after, before+1)
	assert.Equal(t, added, after[len(after)-1])
}

// INVARIANT: updating purchased changes only that item's flag
func (ic *InvariantChecker) TestUpdatePurchasedInvariant(t *testing.T) {
	id := ic.createList(t, "Weekly", []Item{{Name: "milk", Quantity: 2}, {Name: "bread", Quantity: 1}})
	ic.makeRequest(t, http.MethodPut, ic.itemsPath(id)+"/milk?purchased=true", nil, http.StatusOK)

	assert.Equal(t, []Item{{Name: "milk", Quantity: 2, Purchased: true}, {Name: "bread", Quantity: 1}}, ic.getList(t, id).Items)

	ic.makeRequest(t, http.MethodPut, ic.itemsPath(id)+"/ghost?purchased=true", nil, http.StatusNotFound)
}

// INVARIANT: deleting a missing item is 404 and the list is unchanged
func (ic *InvariantChecker) TestDeleteItemInvariant(t *testing.T) {
	items := []Item{{Name: "milk", Quantity: 2}}
	id := ic.createList(t, "Weekly", items)

	ic.makeRequest(t, http.MethodDelete, ic.itemsPath(id)+"/ghost", nil, http.StatusNotFound)
	assert.Equal(t, items, ic.getList(t, id).Items)

	ic.makeRequest(t, http.MethodDelete, ic.itemsPath(id)+"/milk", nil, http.StatusOK)
	assert.Empty(t, ic.getList(t, id).Items)
}

func (ic *InvariantChecker) itemsPath(id string) string {
	return fmt.Sprintf("/grocery-lists/%s/items", id)
}

func (ic *InvariantChecker) createList(t *testing.T, title string, items []Item) string {
	resp := ic.makeRequest(t, http.MethodPost, "/grocery-lists/", ListRequest{Title: title, Items: items}, http.StatusOK)
	var m MessageResponse
	require.NoError(t, json.Unmarshal(resp, &m))
	require.NotEmpty(t, m.ID, "create must return the new id")
	return m.ID
}

func (ic *InvariantChecker) getList(t *testing.T, id string) List {
	resp := ic.makeRequest(t, http.MethodGet, "/grocery-lists/"+id, nil, http.StatusOK)
	var l List
	require.NoError(t, json.Unmarshal(resp, &l))
	return l
}

func (ic *InvariantChecker) makeRequest(t *testing.T, method, path string, body interface{}, expectedStatus int) []byte {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, ic.baseURL+path, bytes.NewBuffer(reqBody))
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ic.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status %d but got %d for %s %s", expectedStatus, resp.StatusCode, method, path)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return respBody
}

// Request/Response models for API interactions

type Item struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Purchased bool   `json:"purchased"`
}

type ListRequest struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
