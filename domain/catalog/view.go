package catalog

import "github.com/samber/lo"

// Summary is the list-view projection. The JSON field names are part of
// the external contract.
type Summary struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	CommentCount int    `json:"commentcount"`
}

// Detail is the single-book projection: comment texts only, in append
// order, without the stored index.
type Detail struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	CommentCount int      `json:"commentcount"`
	Comments     []string `json:"comments"`
}

func SummaryOf(book Book) Summary {
	return Summary{
		ID:           book.ID,
		Title:        book.Title,
		CommentCount: len(book.Comments),
	}
}

func DetailOf(book Book) Detail {
	return Detail{
		ID:           book.ID,
		Title:        book.Title,
		CommentCount: len(book.Comments),
		Comments: lo.Map(book.Comments, func(comment Comment, _ int) string {
			return comment.Text
		}),
	}
}
