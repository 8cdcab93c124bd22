package people

import "errors"

var (
	ErrPersonNotFound   = errors.New("person not found in store")
	ErrPhotoURLRequired = errors.New("photo url is required")
	ErrDuplicateKey     = errors.New("duplicate person key")
	ErrMissingKey       = errors.New("person key must not be empty")
	ErrNegativeAge      = errors.New("person age must not be negative")
)
