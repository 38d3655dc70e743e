package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrTitleRequired        = errors.New("title is required")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrInvalidColor         = errors.New("color is not part of the category palette")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
