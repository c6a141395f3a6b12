package catalog

type CreateBookCommand struct {
	Title string `validate:"required"`
}

type AddCommentCommand struct {
	BookID string
	Text   string `validate:"required"`
}
