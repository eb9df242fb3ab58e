package api

import (
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/sharmaeishan/Grocery-list-Manager/internal/api/recovery"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/api/requestlog"
	"github.com/sharmaeishan/Grocery-list-Manager/internal/services"
)

// NewRouter wires the grocery list and health endpoints.
func NewRouter(svc *services.GroceryListService, health HealthReporter, log zerolog.Logger) *mux.Router {
	router := mux.NewRouter()
	// item names may contain encoded slashes
	router.UseEncodedPath()
	// "." and ".." are valid item names; no cleaning redirects
	router.SkipClean(true)

	// Global middlewares
	router.Use(requestlog.Middleware(log))
	router.Use(recovery.Middleware)

	groceryHandler := NewGroceryListHandler(svc)
	healthHandler := NewHealthHandler(health)

	// Health endpoint
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Collection endpoints, with and without trailing slash
	for _, p := range []string{"/grocery-lists", "/grocery-lists/"} {
		router.HandleFunc(p, groceryHandler.CreateList).Methods("POST")
		router.HandleFunc(p, groceryHandler.ListLists).Methods("GET")
	}

	// List endpoints
	router.HandleFunc("/grocery-lists/{list_id}", groceryHandler.GetList).Methods("GET")
	router.HandleFunc("/grocery-lists/{list_id}", groceryHandler.ReplaceList).Methods("PUT")
	router.HandleFunc("/grocery-lists/{list_id}", groceryHandler.DeleteList).Methods("DELETE")

	// Item endpoints
	router.HandleFunc("/grocery-lists/{list_id}/items", groceryHandler.AddItem).Methods("POST")
	router.HandleFunc("/grocery-lists/{list_id}/items/{item_name}", groceryHandler.UpdateItem).Methods("PUT")
	router.HandleFunc("/grocery-lists/{list_id}/items/{item_name}", groceryHandler.DeleteItem).Methods("DELETE")

	return router
}
