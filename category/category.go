package category

import (
	"moviecatalog/errs"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var ErrInvalidName = errs.Errorf(errs.EINVALID, "category: name is required")

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c Category) Validate() error {
	if err := validation.Validate(c.Name, validation.Required); err != nil {
		return ErrInvalidName
	}
	return nil
}
