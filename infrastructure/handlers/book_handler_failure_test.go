package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/domain/catalog"
	apperrors "bookshelf/errors"
	"bookshelf/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Infrastructure failures never hide behind the 200/plain-text convention;
// they surface as real error statuses.
func Test_Store_Failures_Map_To_Error_Statuses(t *testing.T) {
	storeErr := fmt.Errorf("store unavailable")

	tests := []struct {
		description string
		expect      func(service *mocks.MockICatalogService)
		method      string
		path        string
		wantStatus  int
	}{
		{
			"Should return 500 when listing fails",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().ListBooks().Return(nil, storeErr)
			},
			http.MethodGet, "/api/books", http.StatusInternalServerError,
		},
		{
			"Should return 500 when creation fails",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().CreateBook(gomock.Any()).Return(catalog.Summary{}, storeErr)
			},
			http.MethodPost, "/api/books", http.StatusInternalServerError,
		},
		{
			"Should return 500 when the bulk delete fails",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().DeleteAllBooks().Return(0, storeErr)
			},
			http.MethodDelete, "/api/books", http.StatusInternalServerError,
		},
		{
			"Should return 500 when an identifier matches several records",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().GetBook("dup").Return(catalog.Detail{}, apperrors.ErrAmbiguousBookID)
			},
			http.MethodGet, "/api/books/dup", http.StatusInternalServerError,
		},
		{
			"Should return 500 when the append retry budget is exhausted",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().AddComment(gomock.Any()).Return(catalog.Detail{}, apperrors.ErrTooMuchContention)
			},
			http.MethodPost, "/api/books/hot", http.StatusInternalServerError,
		},
		{
			"Should return 400 when a single delete fails for another reason",
			func(service *mocks.MockICatalogService) {
				service.EXPECT().DeleteBook("id-1").Return(storeErr)
			},
			http.MethodDelete, "/api/books/id-1", http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			service := mocks.NewMockICatalogService(ctrl)
			tt.expect(service)

			router := NewRouter(NewBookHandler(slog.Default(), service))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			req.Equal(tt.wantStatus, recorder.Code)
		})
	}
}
