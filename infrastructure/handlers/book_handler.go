package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bookshelf/domain/catalog"
	apperrors "bookshelf/errors"
	"bookshelf/services"

	"github.com/gorilla/mux"
)

// BookHandler exposes the catalog over HTTP. The contract is inherited and
// deliberately unconventional: expected business failures are returned as
// status 200 with a plain-text body, because existing consumers match on
// the body text.
type BookHandler struct {
	log     *slog.Logger
	catalog services.ICatalogService
}

func NewBookHandler(log *slog.Logger, catalog services.ICatalogService) *BookHandler {
	return &BookHandler{log: log, catalog: catalog}
}

// bookRequest covers both request bodies of the API. The original clients
// post either JSON or form fields, so both are accepted.
type bookRequest struct {
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

func readBookRequest(r *http.Request) bookRequest {
	var req bookRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		// A malformed body is treated like an absent field; validation
		// downstream produces the contractual error text.
		_ = json.NewDecoder(r.Body).Decode(&req)
		return req
	}
	_ = r.ParseForm()
	req.Title = r.PostFormValue("title")
	req.Comment = r.PostFormValue("comment")
	return req
}

// GET /api/books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.catalog.ListBooks()
	if err != nil {
		h.log.Error("Listing books failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, summaries)
}

// POST /api/books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	req := readBookRequest(r)
	summary, err := h.catalog.CreateBook(catalog.CreateBookCommand{Title: req.Title})
	switch {
	case errors.Is(err, apperrors.ErrMissingTitle):
		writeText(w, apperrors.ErrMissingTitle.Error())
	case err != nil:
		h.log.Error("Creating book failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		writeJSON(w, summary)
	}
}

// DELETE /api/books
func (h *BookHandler) DeleteAllBooks(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalog.DeleteAllBooks()
	if err != nil {
		h.log.Error("Bulk delete failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.log.Info("All books deleted", "count", count)
	writeText(w, "complete delete successful")
}

// GET /api/books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	detail, err := h.catalog.GetBook(id)
	switch {
	case errors.Is(err, apperrors.ErrBookNotFound):
		writeText(w, apperrors.ErrBookNotFound.Error())
	case err != nil:
		h.log.Error("Fetching book failed", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		writeJSON(w, detail)
	}
}

// POST /api/books/{id}
func (h *BookHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	req := readBookRequest(r)
	detail, err := h.catalog.AddComment(catalog.AddCommentCommand{BookID: id, Text: req.Comment})
	switch {
	case errors.Is(err, apperrors.ErrMissingComment):
		writeText(w, apperrors.ErrMissingComment.Error())
	case errors.Is(err, apperrors.ErrBookNotFound):
		writeText(w, apperrors.ErrBookNotFound.Error())
	case err != nil:
		h.log.Error("Appending comment failed", "id", id, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
	default:
		writeJSON(w, detail)
	}
}

// DELETE /api/books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.catalog.DeleteBook(id)
	switch {
	case errors.Is(err, apperrors.ErrBookNotFound):
		writeText(w, apperrors.ErrBookNotFound.Error())
	case err != nil:
		h.log.Error("Deleting book failed", "id", id, "error", err)
		w.WriteHeader(http.StatusBadRequest)
	default:
		writeText(w, "delete successful")
	}
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprint(w, text)
}
