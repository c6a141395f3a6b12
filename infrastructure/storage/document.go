package storage

import (
	"fmt"

	"bookshelf/domain/catalog"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

// bookDocument is the stored JSON shape. Comments keep the inherited
// {index, comment} field names so anything reading the store directly
// sees the same documents the original service wrote.
type bookDocument struct {
	Title    string            `json:"title"`
	Comments []commentDocument `json:"comments"`
}

type commentDocument struct {
	Index int    `json:"index"`
	Text  string `json:"comment"`
}

func fromBook(book catalog.Book) bookDocument {
	return bookDocument{
		Title: book.Title,
		Comments: lo.Map(book.Comments, func(comment catalog.Comment, _ int) commentDocument {
			return commentDocument{Index: comment.Index, Text: comment.Text}
		}),
	}
}

func (d bookDocument) toBook(id string) catalog.Book {
	return catalog.Book{
		ID:    id,
		Title: d.Title,
		Comments: lo.Map(d.Comments, func(comment commentDocument, _ int) catalog.Comment {
			return catalog.Comment{Index: comment.Index, Text: comment.Text}
		}),
	}
}

// DecodeBook turns a raw stored value back into a book. It is shared with
// the inspect tooling, which scans the store without going through the
// repository.
func DecodeBook(id string, value []byte) (catalog.Book, error) {
	var doc bookDocument
	if err := jsoniter.ConfigFastest.Unmarshal(value, &doc); err != nil {
		return catalog.Book{}, fmt.Errorf("decoding book %s: %w", id, err)
	}
	return doc.toBook(id), nil
}
