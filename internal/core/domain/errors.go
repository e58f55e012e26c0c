package domain

import "errors"

// ErrValidation is an error thrown when a submitted field is missing or invalid
var ErrValidation = errors.New("validation failed")

// ErrFileTooLarge is an error thrown when an uploaded file exceeds its size ceiling
var ErrFileTooLarge = errors.New("file too large")

// ErrUploadInterrupted is an error thrown when the upload body could not be read to the end
var ErrUploadInterrupted = errors.New("upload interrupted")

// ErrMovieNotFound is an error thrown when a movie record is not found
var ErrMovieNotFound = errors.New("movie not found")

// ErrBlobNotFound is an error thrown when a blob is not found in the blob store
var ErrBlobNotFound = errors.New("blob not found")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrStorage is an error thrown when the blob store fails to write, read or delete
var ErrStorage = errors.New("storage error")

// ErrPersistence is an error thrown when the metadata store fails
var ErrPersistence = errors.New("persistence error")

// ErrRangeNotSatisfiable is an error thrown when a byte range cannot be served
var ErrRangeNotSatisfiable = errors.New("range not satisfiable")
