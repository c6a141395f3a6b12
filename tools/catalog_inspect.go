package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bookshelf/infrastructure/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Dumps the stored books as a table. Opens the store read-only so it can
// run next to a live server.
func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Title", "Comments", "Last comment"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(storage.BookKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(storage.BookKeyPrefix):])

			err := item.Value(func(v []byte) error {
				book, err := storage.DecodeBook(id, v)
				if err != nil {
					// Keep scanning, report the broken record.
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}

				lastComment := ""
				if len(book.Comments) > 0 {
					lastComment = book.Comments[len(book.Comments)-1].Text
				}

				displayID := book.ID
				if len(displayID) > 8 {
					displayID = displayID[:8]
				}
				table.Append([]string{
					displayID,
					book.Title,
					fmt.Sprintf("%d", len(book.Comments)),
					lastComment,
				})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning: ", err)
	}

	table.Render()
	fmt.Printf("\n%d book(s)\n", count)
}

func openDB(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(options)
}
