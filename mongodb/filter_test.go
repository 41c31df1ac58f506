package mongodb

import (
	"testing"
	"time"

	"moviecatalog/category"
	"moviecatalog/movie"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestSearchFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   movie.Filter
		expected bson.D
	}{
		{
			name:     "empty filter matches everything",
			filter:   movie.Filter{},
			expected: bson.D{},
		},
		{
			name:   "title becomes a case-insensitive regex on name",
			filter: movie.Filter{Title: "abc"},
			expected: bson.D{
				{Key: "name", Value: bson.Regex{Pattern: "abc", Options: "i"}},
			},
		},
		{
			name:   "regex metacharacters are matched literally",
			filter: movie.Filter{Title: "a.c", Description: "(x)"},
			expected: bson.D{
				{Key: "name", Value: bson.Regex{Pattern: `a\.c`, Options: "i"}},
				{Key: "description", Value: bson.Regex{Pattern: `\(x\)`, Options: "i"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, searchFilter(tt.filter.Clauses()))
		})
	}
}

func TestNewMovieDocument_InvalidReference(t *testing.T) {
	_, err := newMovieDocument(bson.NewObjectID(), movie.Movie{Categories: []string{"not-an-object-id"}})

	assert.Equal(t, movie.ErrInvalidReference, err)
}

func TestNewMovieDocument_TruncatesReleaseDate(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	doc, err := newMovieDocument(bson.NewObjectID(), movie.Movie{
		ReleaseDate: time.Date(2010, 7, 16, 14, 0, 0, 987654321, loc),
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2010, 7, 16, 12, 0, 0, 987000000, time.UTC), doc.ReleaseDate)
	assert.Equal(t, doc.ReleaseDate, doc.toMovie().ReleaseDate)
}

func TestObjectID_Malformed(t *testing.T) {
	_, err := objectID("movie", "42")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `invalid movie id "42"`)
}

func TestOrderByIDs(t *testing.T) {
	byID := map[string]category.Category{
		"a": {ID: "a", Name: "Drama"},
		"b": {ID: "b", Name: "Sci-Fi"},
	}

	got := orderByIDs([]string{"b", "missing", "a"}, byID)

	assert.Equal(t, []category.Category{{ID: "b", Name: "Sci-Fi"}, {ID: "a", Name: "Drama"}}, got)
}
