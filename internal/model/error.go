package model

import "errors"

var (
	ErrValidation        = errors.New("validation error")       // 400
	ErrIncompatible      = errors.New("incompatible selection") // 422
	ErrReadOnly          = errors.New("selection is read-only") // 409
	ErrComponentNotFound = errors.New("component not found")    // 404
	ErrSessionNotFound   = errors.New("session not found")      // 404
	ErrOrderNotFound     = errors.New("order not found")        // 404
	ErrPresetNotFound    = errors.New("preset not found")       // 404
	ErrOrderConflict     = errors.New("order conflict")         // 409
	ErrPresetExists      = errors.New("preset already exists")  // 409
	ErrCatalogLookup     = errors.New("catalog lookup failed")  // 502
	ErrPersistence       = errors.New("persistence failed")     // 502
)
