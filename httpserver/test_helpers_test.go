package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"moviecatalog/category"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{}
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) ListMovies(ctx context.Context, f movie.Filter, p movie.Page) (movie.Result, error) {
	args := m.Called(ctx, f, p)
	return args.Get(0).(movie.Result), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id string, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, id, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) AddCategory(ctx context.Context, c category.Category) (category.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(category.Category), args.Error(1)
}

func (m *MockCategoryService) MovieCategories(ctx context.Context, movieID string) ([]category.Category, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *MockCategoryService) CategoryMovies(ctx context.Context, categoryID string) ([]movie.Movie, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func newTestServer(t *testing.T) (*httpserver.Server, *MockMovieService, *MockCategoryService) {
	t.Helper()
	movies := new(MockMovieService)
	categories := new(MockCategoryService)
	server, err := httpserver.New(
		httpserver.WithConfig(testConfig()),
		httpserver.WithMovieService(movies),
		httpserver.WithCategoryService(categories),
	)
	require.NoError(t, err)
	return server, movies, categories
}

func serve(server *httpserver.Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, request)
	return recorder
}

func decodeAPIResponse(t *testing.T, recorder *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp), recorder.Body.String())
	return resp
}

func decodeAPIResult(t *testing.T, result interface{}, dest interface{}) {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), dest), recorder.Body.String())
}

// halBody mirrors the HAL envelopes for assertions.
type halBody struct {
	Links       map[string]httpserver.Link `json:"_links"`
	Count       int64                      `json:"count"`
	TotalPages  int                        `json:"totalPages"`
	CurrentPage int                        `json:"currentPage"`
	Data        json.RawMessage            `json:"data"`
}
