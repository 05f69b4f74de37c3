package core

import "errors"

var (
	// ErrNotFound: el documento no existe (o ya fue borrado).
	ErrNotFound = errors.New("not found")
	// ErrInvalidID: el ID no tiene el formato del driver (ObjectID hex
	// en Mongo, UUID en Postgres).
	ErrInvalidID = errors.New("invalid id")
)
