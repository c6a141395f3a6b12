//go:generate go run go.uber.org/mock/mockgen -source=book_repository.go -destination=../../mocks/mock_book_repository.go -package=mocks
package storage

import (
	"errors"
	"fmt"
	"log/slog"

	"bookshelf/domain/catalog"
	apperrors "bookshelf/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

// BookKeyPrefix namespaces book documents inside the store. The full key
// is "book:<id>".
const BookKeyPrefix = "book:"

// maxAppendRetries bounds the optimistic retry loop of AppendComment.
// Exhausting it surfaces as ErrTooMuchContention instead of looping.
const maxAppendRetries = 16

type IBookRepository interface {
	Create(title string) (catalog.Book, error)
	ListAll() ([]catalog.Book, error)
	Resolve(id string) (catalog.Book, error)
	DeleteOne(id string) error
	DeleteAll() (int, error)
	AppendComment(id string, text string) (catalog.Book, error)
}

type BookRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBookRepository(db *badger.DB, log *slog.Logger) *BookRepository {
	return &BookRepository{db: db, log: log}
}

// Create persists a new book with an empty comment sequence and returns it
// with its assigned identifier.
func (r *BookRepository) Create(title string) (catalog.Book, error) {
	book := catalog.Book{
		ID:       uuid.NewString(),
		Title:    title,
		Comments: []catalog.Comment{},
	}
	data, err := jsoniter.ConfigFastest.Marshal(fromBook(book))
	if err != nil {
		return catalog.Book{}, fmt.Errorf("encoding book: %w", err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(bookKey(book.ID), data)
	})
	if err != nil {
		return catalog.Book{}, fmt.Errorf("persisting book: %w", err)
	}
	r.log.Info("Book created", "id", book.ID, "title", book.Title)
	return book, nil
}

// ListAll returns every stored book in store-native key order. Snapshot
// semantics: the scan runs inside a single read transaction.
func (r *BookRepository) ListAll() ([]catalog.Book, error) {
	var books []catalog.Book
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(BookKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(BookKeyPrefix):])
			err := item.Value(func(value []byte) error {
				book, err := DecodeBook(id, value)
				if err != nil {
					return err
				}
				books = append(books, book)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing books: %w", err)
	}
	return books, nil
}

// Resolve returns the single book stored under id. It enforces the
// unique-match contract: zero matches fails with ErrBookNotFound, more
// than one exact match means the store broke identifier uniqueness and is
// reported as ErrAmbiguousBookID rather than silently picking one.
func (r *BookRepository) Resolve(id string) (catalog.Book, error) {
	if id == "" {
		return catalog.Book{}, apperrors.ErrBookNotFound
	}
	var matches []catalog.Book
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := bookKey(id)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			if len(item.Key()) != len(prefix) {
				// Another book whose id merely starts with this id.
				continue
			}
			err := item.Value(func(value []byte) error {
				book, err := DecodeBook(id, value)
				if err != nil {
					return err
				}
				matches = append(matches, book)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return catalog.Book{}, fmt.Errorf("resolving book %s: %w", id, err)
	}
	switch len(matches) {
	case 0:
		return catalog.Book{}, apperrors.ErrBookNotFound
	case 1:
		return matches[0], nil
	default:
		r.log.Error("Identifier matched multiple records", "id", id, "matches", len(matches))
		return catalog.Book{}, apperrors.ErrAmbiguousBookID
	}
}

// DeleteOne resolves id and removes the record.
func (r *BookRepository) DeleteOne(id string) error {
	if _, err := r.Resolve(id); err != nil {
		return err
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(bookKey(id))
	})
	if err != nil {
		return fmt.Errorf("deleting book %s: %w", id, err)
	}
	r.log.Info("Book deleted", "id", id)
	return nil
}

// DeleteAll removes every stored book and returns how many records were
// targeted. The sweep is intentionally not atomic across records: keys are
// collected under one read view, then deleted one write each, so books
// created concurrently with the sweep may survive it.
func (r *BookRepository) DeleteAll() (int, error) {
	var keys [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(BookKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("collecting books for delete: %w", err)
	}

	for _, key := range keys {
		err = r.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		})
		if err != nil {
			return 0, fmt.Errorf("deleting %s: %w", key, err)
		}
	}
	r.log.Info("All books deleted", "count", len(keys))
	return len(keys), nil
}

// AppendComment merges a new comment into the book's stored sequence
// without losing concurrent writers' comments. The sequence is re-read
// inside the transaction, so a write committed after resolution is
// observed rather than overwritten; when the commit detects a conflicting
// concurrent write, the whole read-modify-write is retried.
//
// The stored index keeps the inherited numbering: 0 when the sequence was
// empty, length+1 otherwise. External consumers may depend on it, so it is
// preserved as is.
func (r *BookRepository) AppendComment(id string, text string) (catalog.Book, error) {
	if _, err := r.Resolve(id); err != nil {
		return catalog.Book{}, err
	}

	key := bookKey(id)
	for attempt := 1; ; attempt++ {
		err := r.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(key)
			if err != nil {
				return err
			}
			var doc bookDocument
			err = item.Value(func(value []byte) error {
				return jsoniter.ConfigFastest.Unmarshal(value, &doc)
			})
			if err != nil {
				return err
			}

			index := 0
			if len(doc.Comments) > 0 {
				index = len(doc.Comments) + 1
			}
			doc.Comments = append(doc.Comments, commentDocument{Index: index, Text: text})

			data, err := jsoniter.ConfigFastest.Marshal(doc)
			if err != nil {
				return err
			}
			return txn.Set(key, data)
		})
		switch {
		case err == nil:
			// Re-resolve so the caller sees the committed state, which may
			// already include comments from writers that raced this one.
			return r.Resolve(id)
		case errors.Is(err, badger.ErrConflict) && attempt < maxAppendRetries:
			r.log.Debug("Comment append conflicted, retrying", "id", id, "attempt", attempt)
		case errors.Is(err, badger.ErrConflict):
			r.log.Error("Comment append retry budget exhausted", "id", id, "attempts", attempt)
			return catalog.Book{}, apperrors.ErrTooMuchContention
		case errors.Is(err, badger.ErrKeyNotFound):
			// The book was deleted between resolution and the transaction.
			return catalog.Book{}, apperrors.ErrBookNotFound
		default:
			return catalog.Book{}, fmt.Errorf("appending comment to %s: %w", id, err)
		}
	}
}

func bookKey(id string) []byte {
	return []byte(BookKeyPrefix + id)
}
