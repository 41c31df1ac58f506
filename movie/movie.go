package movie

import (
	"errors"
	"time"

	"moviecatalog/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	NameMaxLength        = 128
	DescriptionMaxLength = 2048
	MinRating            = 0.0
	MaxRating            = 5.0
)

var (
	ErrMovieNotFound    = errs.Errorf(errs.ENOTFOUND, "Movie not found")
	ErrInvalidReference = errs.Errorf(errs.EINVALID, "movie: invalid category reference")
)

// Movie is a catalog entry. Categories holds category ids; they are plain
// references and nothing guarantees the referenced categories still exist.
type Movie struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ReleaseDate time.Time `json:"releaseDate"`
	Rating      *float64  `json:"rating,omitempty"`
	Categories  []string  `json:"categories"`
}

func (m Movie) Validate() error {
	err := validation.ValidateStruct(&m,
		validation.Field(&m.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(0, NameMaxLength).Error("name must be at most 128 characters"),
		),
		validation.Field(&m.Description,
			validation.Required.Error("description is required"),
			validation.RuneLength(0, DescriptionMaxLength).Error("description must be at most 2048 characters"),
		),
		validation.Field(&m.ReleaseDate,
			validation.Required.Error("releaseDate is required"),
		),
		validation.Field(&m.Rating,
			validation.Min(MinRating).Error("rating must be between 0 and 5"),
			validation.Max(MaxRating).Error("rating must be between 0 and 5"),
		),
	)
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return errs.Errorf(errs.EINVALID, "movie validation failed: %s", verrs.Error())
	}
	return err
}

// WithCategories returns m with a non-nil category list so it always
// renders as a JSON array.
func (m Movie) WithCategories() Movie {
	if m.Categories == nil {
		m.Categories = []string{}
	}
	return m
}
