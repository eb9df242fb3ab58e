package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/hlog"

	respond "github.com/sharmaeishan/Grocery-list-Manager/internal/api/respond"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/api/validate"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/model"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/services"
)

const (
	msgListCreated  = "Grocery list created successfully"
	msgListNotFound = "Grocery list not found"
	msgListUpdated  = "Grocery list updated successfully"
	msgListDeleted  = "Grocery list deleted successfully"
	msgItemAdded    = "Item added to grocery list"
	msgItemUpdated  = "Item status updated"
	msgItemNotFound = "Grocery list or item not found"
	msgItemDeleted  = "Item deleted from grocery list"
)

// GroceryListHandler is a thin HTTP transport over GroceryListService.
type GroceryListHandler struct {
	svc *services.GroceryListService
}

func NewGroceryListHandler(svc *services.GroceryListService) *GroceryListHandler {
	return &GroceryListHandler{svc: svc}
}

// pathVar returns the unescaped route variable; the router matches on encoded paths.
func pathVar(r *http.Request, name string) string {
	raw := mux.Vars(r)[name]
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// fail maps service errors onto HTTP responses.
func fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	case model.IsNotFound(err):
		respond.WriteNotFound(w, notFoundMsg)
	default:
		hlog.FromRequest(r).Error().Stack().Err(err).Str("path", r.URL.Path).Msg("grocery list operation failed")
		respond.WriteInternalError(w, "storage failure")
	}
}

// CreateList POST /grocery-lists/
func (h *GroceryListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	title, items, err := validate.DecodeList(r)
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	id, err := h.svc.CreateList(r.Context(), title, items)
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	respond.WriteJSON(w, http.StatusOK, respond.MessageResponse{Message: msgListCreated, ID: id})
}

// ListLists GET /grocery-lists/
func (h *GroceryListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListAll(r.Context())
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	if lists == nil {
		lists = []*model.GroceryList{}
	}
	respond.WriteJSON(w, http.StatusOK, lists)
}

// GetList GET /grocery-lists/{list_id}
func (h *GroceryListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.GetList(r.Context(), pathVar(r, "list_id"))
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	respond.WriteJSON(w, http.StatusOK, l)
}

// ReplaceList PUT /grocery-lists/{list_id}
func (h *GroceryListHandler) ReplaceList(w http.ResponseWriter, r *http.Request) {
	title, items, err := validate.DecodeList(r)
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	if err := h.svc.ReplaceList(r.Context(), pathVar(r, "list_id"), title, items); err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	respond.WriteMessage(w, msgListUpdated)
}

// DeleteList DELETE /grocery-lists/{list_id}
func (h *GroceryListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteList(r.Context(), pathVar(r, "list_id")); err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	respond.WriteMessage(w, msgListDeleted)
}

// AddItem POST /grocery-lists/{list_id}/items
func (h *GroceryListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, err := validate.DecodeItem(r)
	if err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	if err := h.svc.AddItem(r.Context(), pathVar(r, "list_id"), item); err != nil {
		fail(w, r, err, msgListNotFound)
		return
	}
	respond.WriteMessage(w, msgItemAdded)
}

// UpdateItem PUT /grocery-lists/{list_id}/items/{item_name}?purchased=
func (h *GroceryListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	purchased, err := validate.Purchased(r)
	if err != nil {
		fail(w, r, err, msgItemNotFound)
		return
	}
	if err := h.svc.UpdateItemPurchased(r.Context(), pathVar(r, "list_id"), pathVar(r, "item_name"), purchased); err != nil {
		fail(w, r, err, msgItemNotFound)
		return
	}
	respond.WriteMessage(w, msgItemUpdated)
}

// DeleteItem DELETE /grocery-lists/{list_id}/items/{item_name}
func (h *GroceryListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteItem(r.Context(), pathVar(r, "list_id"), pathVar(r, "item_name")); err != nil {
		fail(w, r, err, msgItemNotFound)
		return
	}
	respond.WriteMessage(w, msgItemDeleted)
}
