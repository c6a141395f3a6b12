package internal

import (
	"fmt"
	"html/template"
	"net/http"

	"bookshelf/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
)

// Minimal operator page: one row per stored book, straight from the store.
const inspectTemplate = `<!DOCTYPE html>
<html>
<head><title>bookshelf inspect</title>
<style>
body { font-family: monospace; margin: 2em; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 4px 10px; text-align: left; }
</style>
</head>
<body>
<h2>Stored books ({{len .Items}})</h2>
<table>
<tr><th>Key</th><th>Title</th><th>Comments</th><th>Last comment</th></tr>
{{range .Items}}
<tr><td>{{.Key}}</td><td>{{.Title}}</td><td>{{.CommentCount}}</td><td>{{.LastComment}}</td></tr>
{{end}}
</table>
</body>
</html>`

type InspectRow struct {
	Key          string
	Title        string
	CommentCount int
	LastComment  string
}

type PageData struct {
	Items []InspectRow
}

// StartDebugServer serves a read-only /inspect page over the raw store on
// a separate port. Not part of the public contract.
func StartDebugServer(db *badger.DB, port int, endpoint string) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.New("inspect").Parse(inspectTemplate))

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		var data PageData
		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			prefix := []byte(storage.BookKeyPrefix)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				key := string(item.Key())
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapRow(key, val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

func mapRow(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Title: "(undecodable)"}
	book, err := storage.DecodeBook(key[len(storage.BookKeyPrefix):], val)
	if err != nil {
		return row
	}
	row.Title = book.Title
	row.CommentCount = len(book.Comments)
	if len(book.Comments) > 0 {
		row.LastComment = book.Comments[len(book.Comments)-1].Text
	}
	return row
}
