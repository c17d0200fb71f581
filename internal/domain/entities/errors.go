package entities

import "errors"

// Domain errors
var (
	// ErrUnrecognizedCodeFormat means a file was claimed as an annotation
	// file but carried no recognized column signature
	ErrUnrecognizedCodeFormat = errors.New("code file format not recognized")
)
