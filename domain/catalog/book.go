package catalog

// Comment lives inside its book's comment sequence and has no identity of
// its own. Index is storage bookkeeping assigned at append time; it is
// never exposed through the views.
type Comment struct {
	Index int
	Text  string
}

// Book is the stored record. ID is assigned by the store at creation and
// immutable afterwards, as is Title. Comments only ever grow.
type Book struct {
	ID       string
	Title    string
	Comments []Comment
}
