package services

import "errors"

var (
	ErrAdNotFound       = errors.New("ad not found")
	ErrAdCreateFailed   = errors.New("failed to create ad")
	ErrCategoryNotFound = errors.New("category not found")
)
