package httpserver

import (
	"encoding/json"
	"fmt"
	"time"

	"moviecatalog/category"
	"moviecatalog/movie"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date (YYYY-MM-DD) or an RFC 3339 timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("releaseDate must be a string")
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("releaseDate %q must be YYYY-MM-DD or RFC 3339", raw)
}

type CreateMovieRequest struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description string   `json:"description" validate:"required,max=2048"`
	ReleaseDate Date     `json:"releaseDate" swaggertype:"string" example:"2010-07-16"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Categories  []string `json:"categories" validate:"omitempty,dive,required"`
}

func (r CreateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate.Time,
		Rating:      r.Rating,
		Categories:  r.Categories,
	}
}

// UpdateMovieRequest carries the replaceable fields of a movie; categories
// are not part of an update.
type UpdateMovieRequest struct {
	Name        string   `json:"name" validate:"required,max=128"`
	Description string   `json:"description" validate:"required,max=2048"`
	ReleaseDate Date     `json:"releaseDate" swaggertype:"string" example:"2010-07-16"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

func (r UpdateMovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate.Time,
		Rating:      r.Rating,
	}
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r CreateCategoryRequest) ToCategory() category.Category {
	return category.Category{Name: r.Name}
}
