package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter mounts the book routes under /api, matching the paths the
// original service served.
func NewRouter(handler *BookHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/books", handler.GetBooks).Methods(http.MethodGet)
	api.HandleFunc("/books", handler.CreateBook).Methods(http.MethodPost)
	api.HandleFunc("/books", handler.DeleteAllBooks).Methods(http.MethodDelete)

	api.HandleFunc("/books/{id}", handler.GetBook).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}", handler.AddComment).Methods(http.MethodPost)
	api.HandleFunc("/books/{id}", handler.DeleteBook).Methods(http.MethodDelete)

	return router
}
