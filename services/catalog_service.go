//go:generate go run go.uber.org/mock/mockgen -source=catalog_service.go -destination=../mocks/mock_catalog_service.go -package=mocks
package services

import (
	"log/slog"

	"bookshelf/domain/catalog"
	apperrors "bookshelf/errors"
	"bookshelf/infrastructure/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ICatalogService interface {
	ListBooks() ([]catalog.Summary, error)
	CreateBook(cmd catalog.CreateBookCommand) (catalog.Summary, error)
	GetBook(id string) (catalog.Detail, error)
	AddComment(cmd catalog.AddCommentCommand) (catalog.Detail, error)
	DeleteBook(id string) error
	DeleteAllBooks() (int, error)
}

// CatalogService is the facade the transport layer talks to. It validates
// commands before any store access and owns no state; the store lifecycle
// belongs to the composition root.
type CatalogService struct {
	log        *slog.Logger
	repository storage.IBookRepository
}

func NewCatalogService(log *slog.Logger, repository storage.IBookRepository) *CatalogService {
	return &CatalogService{log: log, repository: repository}
}

func (s *CatalogService) ListBooks() ([]catalog.Summary, error) {
	books, err := s.repository.ListAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]catalog.Summary, 0, len(books))
	for _, book := range books {
		summaries = append(summaries, catalog.SummaryOf(book))
	}
	return summaries, nil
}

func (s *CatalogService) CreateBook(cmd catalog.CreateBookCommand) (catalog.Summary, error) {
	if err := validate.Struct(cmd); err != nil {
		s.log.Debug("Rejected book creation", "reason", err)
		return catalog.Summary{}, apperrors.ErrMissingTitle
	}
	book, err := s.repository.Create(cmd.Title)
	if err != nil {
		return catalog.Summary{}, err
	}
	return catalog.SummaryOf(book), nil
}

func (s *CatalogService) GetBook(id string) (catalog.Detail, error) {
	book, err := s.repository.Resolve(id)
	if err != nil {
		return catalog.Detail{}, err
	}
	return catalog.DetailOf(book), nil
}

// AddComment validates the comment text before touching the store, so a
// malformed request never opens a transaction.
func (s *CatalogService) AddComment(cmd catalog.AddCommentCommand) (catalog.Detail, error) {
	if err := validate.Struct(cmd); err != nil {
		s.log.Debug("Rejected comment", "book", cmd.BookID, "reason", err)
		return catalog.Detail{}, apperrors.ErrMissingComment
	}
	book, err := s.repository.AppendComment(cmd.BookID, cmd.Text)
	if err != nil {
		return catalog.Detail{}, err
	}
	return catalog.DetailOf(book), nil
}

func (s *CatalogService) DeleteBook(id string) error {
	return s.repository.DeleteOne(id)
}

func (s *CatalogService) DeleteAllBooks() (int, error) {
	return s.repository.DeleteAll()
}
