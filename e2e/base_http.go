package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"bookshelf/infrastructure/handlers"
	"bookshelf/infrastructure/storage"
	"bookshelf/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config  Config
	baseURL string
	client  *http.Client

	server *httptest.Server
	db     *badger.DB
}

// SetupSuite loads the environment configuration and, unless a target
// address is configured, boots the full stack in-process over an
// in-memory store.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.client = &http.Client{Timeout: 30 * time.Second}

	if s.Config.TargetAddr != "" {
		s.baseURL = s.Config.TargetAddr
		return
	}

	s.db, err = badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	repository := storage.NewBookRepository(s.db, slog.Default())
	service := services.NewCatalogService(slog.Default(), repository)
	s.server = httptest.NewServer(handlers.NewRouter(handlers.NewBookHandler(slog.Default(), service)))
	s.baseURL = s.server.URL
}

func (s *BaseHTTPSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// Step prints a colorized header so scenario logs stay readable.
func (s *BaseHTTPSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Do sends a request and returns status and body, logging the exchange
// when E2E_DEBUG_HTTP is enabled.
func (s *BaseHTTPSuite) Do(method, path string, body any) (int, string) {
	var reader io.Reader
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	response, err := s.client.Do(request)
	s.Require().NoError(err)
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	s.Require().NoError(err)

	logBuilder := strings.Builder{}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%d] in %v", method, path, response.StatusCode, time.Since(start))
	if s.Config.DebugHTTP {
		fmt.Fprintln(&logBuilder, "\nREQUEST:")
		fmt.Fprintln(&logBuilder, string(payload))
		fmt.Fprintln(&logBuilder, "RESPONSE:")
		fmt.Fprintln(&logBuilder, string(data))
	}
	s.T().Log(logBuilder.String())

	return response.StatusCode, string(data)
}

// DoJSON is Do plus decoding of the response body.
func (s *BaseHTTPSuite) DoJSON(method, path string, body, target any) int {
	status, raw := s.Do(method, path, body)
	s.Require().NoError(json.Unmarshal([]byte(raw), target), "body was: %s", raw)
	return status
}
