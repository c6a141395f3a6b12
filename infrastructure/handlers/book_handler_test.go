package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bookshelf/domain/catalog"
	"bookshelf/infrastructure/storage"
	"bookshelf/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repository := storage.NewBookRepository(db, slog.Default())
	service := services.NewCatalogService(slog.Default(), repository)
	server := httptest.NewServer(NewRouter(NewBookHandler(slog.Default(), service)))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func doRequest(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func Test_Create_Book_Returns_Summary(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/books", map[string]string{"title": "The Gruffalo"})
	req.Equal(http.StatusOK, resp.StatusCode)

	var summary catalog.Summary
	decodeBody(t, resp, &summary)
	req.NotEmpty(summary.ID)
	req.Equal("The Gruffalo", summary.Title)
}

func Test_Create_Book_Missing_Title(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	// JSON body without a title.
	resp := postJSON(t, server.URL+"/api/books", map[string]string{})
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("missing required field title", readBody(t, resp))

	// Form body with an empty title.
	resp, err := http.Post(server.URL+"/api/books",
		"application/x-www-form-urlencoded",
		strings.NewReader(url.Values{"title": {""}}.Encode()))
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("missing required field title", readBody(t, resp))
}

func Test_Create_Book_From_Form_Body(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/books",
		"application/x-www-form-urlencoded",
		strings.NewReader(url.Values{"title": {"Form Fed"}}.Encode()))
	req.NoError(err)
	req.Equal(http.StatusOK, resp.StatusCode)

	var summary catalog.Summary
	decodeBody(t, resp, &summary)
	req.Equal("Form Fed", summary.Title)
}

func Test_List_Books_Reports_Comment_Counts(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/books", map[string]string{"title": "Counted"})
	var summary catalog.Summary
	decodeBody(t, resp, &summary)

	resp = postJSON(t, server.URL+"/api/books/"+summary.ID, map[string]string{"comment": "one"})
	readBody(t, resp)
	resp = postJSON(t, server.URL+"/api/books/"+summary.ID, map[string]string{"comment": "two"})
	readBody(t, resp)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/books")
	req.Equal(http.StatusOK, resp.StatusCode)

	var summaries []catalog.Summary
	decodeBody(t, resp, &summaries)
	req.Len(summaries, 1)
	req.Equal(2, summaries[0].CommentCount)
}

func Test_List_Books_Empty_Store_Returns_Empty_Array(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/books")
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("[]\n", readBody(t, resp))
}

func Test_Get_Missing_Book(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/books/does-not-exist")
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("no book exists", readBody(t, resp))
}

func Test_Add_Comment_Missing_Field(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/books", map[string]string{"title": "Quiet Book"})
	var summary catalog.Summary
	decodeBody(t, resp, &summary)

	resp = postJSON(t, server.URL+"/api/books/"+summary.ID, map[string]string{})
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("missing required field comment", readBody(t, resp))

	// The rejected request must not have touched the comment sequence.
	resp = doRequest(t, http.MethodGet, server.URL+"/api/books/"+summary.ID)
	var detail catalog.Detail
	decodeBody(t, resp, &detail)
	req.Empty(detail.Comments)
}

func Test_Add_Comment_To_Missing_Book(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/books/does-not-exist", map[string]string{"comment": "void"})
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("no book exists", readBody(t, resp))
}

func Test_Delete_Missing_Book(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/books/does-not-exist")
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("no book exists", readBody(t, resp))
}

func Test_Delete_All_Books(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	for _, title := range []string{"One", "Two"} {
		resp := postJSON(t, server.URL+"/api/books", map[string]string{"title": title})
		readBody(t, resp)
	}

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/books")
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("complete delete successful", readBody(t, resp))

	resp = doRequest(t, http.MethodGet, server.URL+"/api/books")
	var summaries []catalog.Summary
	decodeBody(t, resp, &summaries)
	req.Empty(summaries)
}

// Full round trip: create, read, comment, delete, read again.
func Test_Library_Round_Trip(t *testing.T) {
	req := require.New(t)
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/books", map[string]string{"title": "The Gruffalo"})
	req.Equal(http.StatusOK, resp.StatusCode)
	var summary catalog.Summary
	decodeBody(t, resp, &summary)
	req.NotEmpty(summary.ID)
	req.Equal("The Gruffalo", summary.Title)

	resp = doRequest(t, http.MethodGet, server.URL+"/api/books/"+summary.ID)
	req.Equal(http.StatusOK, resp.StatusCode)
	var detail catalog.Detail
	decodeBody(t, resp, &detail)
	req.Equal(summary.ID, detail.ID)
	req.Equal("The Gruffalo", detail.Title)
	req.NotNil(detail.Comments)
	req.Empty(detail.Comments)

	resp = postJSON(t, server.URL+"/api/books/"+summary.ID, map[string]string{"comment": "great"})
	req.Equal(http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &detail)
	req.Equal([]string{"great"}, detail.Comments)

	resp = doRequest(t, http.MethodDelete, server.URL+"/api/books/"+summary.ID)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("delete successful", readBody(t, resp))

	resp = doRequest(t, http.MethodGet, server.URL+"/api/books/"+summary.ID)
	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal("no book exists", readBody(t, resp))
}
