package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"moviecatalog/category"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/store"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

func main() {
	var (
		csvPath string
		zipURL  string
		limit   int
	)

	flag.StringVar(&csvPath, "csv", "", "Path to movies.csv (skip download)")
	flag.StringVar(&zipURL, "url", defaultMovieLensURL, "MovieLens zip URL")
	flag.IntVar(&limit, "limit", 0, "Limit number of rows to import (0 = all)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		slog.Error("cannot open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer func() { _ = st.Close(ctx) }()

	cleanup := func() {}
	if csvPath == "" {
		path, c, err := downloadAndExtract(zipURL)
		if err != nil {
			slog.Error("failed to download dataset", "error", err)
			os.Exit(1)
		}
		csvPath = path
		cleanup = c
	}
	defer cleanup()

	s := newSeeder(movie.NewUsecase(st.Movies), category.NewUsecase(st.Categories, st.Movies))
	count, err := importMovies(ctx, s, csvPath, limit)
	if err != nil {
		slog.Error("import failed", "rows", count, "error", err)
		os.Exit(1)
	}

	slog.Info("import completed", "rows", count)
}

func downloadAndExtract(zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if !strings.HasSuffix(file.Name, "movies.csv") {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, filepath.Base(file.Name))
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

func importMovies(ctx context.Context, s seeder, csvPath string, limit int) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	idx, err := parseMovieCSVHeader(reader)
	if err != nil {
		return 0, err
	}

	count := 0
	for limit <= 0 || count < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, err
		}
		row, ok := parseMovieRecord(record, idx)
		if !ok {
			continue
		}

		if err := s.add(ctx, row); err != nil {
			return count, fmt.Errorf("import %q: %w", row.title, err)
		}

		count++
	}

	return count, nil
}

// seeder adds MovieLens rows through the domain services, creating one
// category per genre the first time it is seen.
type seeder struct {
	movies     movie.Service
	categories category.Service
	genreIDs   map[string]string
}

func newSeeder(movies movie.Service, categories category.Service) seeder {
	return seeder{
		movies:     movies,
		categories: categories,
		genreIDs:   map[string]string{},
	}
}

func (s seeder) add(ctx context.Context, row movieRow) error {
	ids := make([]string, 0, len(row.genres))
	for _, genre := range row.genres {
		id, ok := s.genreIDs[genre]
		if !ok {
			created, err := s.categories.AddCategory(ctx, category.Category{Name: genre})
			if err != nil {
				return err
			}
			id = created.ID
			s.genreIDs[genre] = id
		}
		ids = append(ids, id)
	}

	_, err := s.movies.AddMovie(ctx, row.toMovie(ids))
	return err
}

type columns struct {
	title  int
	genres int
}

func parseMovieCSVHeader(reader *csv.Reader) (columns, error) {
	header, err := reader.Read()
	if err != nil {
		return columns{}, err
	}

	idx := columns{title: -1, genres: -1}
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idx.title = i
		case "genres":
			idx.genres = i
		}
	}
	if idx.title == -1 || idx.genres == -1 {
		return columns{}, errors.New("missing required columns in csv header")
	}

	return idx, nil
}

// movieRow is one line of movies.csv, e.g. "Toy Story (1995)" with genres
// "Adventure|Animation|Children".
type movieRow struct {
	title  string
	year   int
	genres []string
}

var titleYear = regexp.MustCompile(`^(.*\S)\s+\((\d{4})\)$`)

const noGenres = "(no genres listed)"

func parseMovieRecord(record []string, idx columns) (movieRow, bool) {
	if idx.title >= len(record) || idx.genres >= len(record) {
		return movieRow{}, false
	}

	title := strings.TrimSpace(record[idx.title])
	m := titleYear.FindStringSubmatch(title)
	if m == nil {
		return movieRow{}, false
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return movieRow{}, false
	}

	var genres []string
	for _, g := range strings.Split(strings.TrimSpace(record[idx.genres]), "|") {
		if g = strings.TrimSpace(g); g != "" && g != noGenres {
			genres = append(genres, g)
		}
	}

	return movieRow{title: m[1], year: year, genres: genres}, true
}

func (r movieRow) toMovie(categoryIDs []string) movie.Movie {
	description := "No genres listed"
	if len(r.genres) > 0 {
		description = strings.Join(r.genres, ", ")
	}
	name := r.title
	if utf8.RuneCountInString(name) > movie.NameMaxLength {
		name = string([]rune(name)[:movie.NameMaxLength])
	}

	return movie.Movie{
		Name:        name,
		Description: description,
		ReleaseDate: time.Date(r.year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Categories:  categoryIDs,
	}
}
