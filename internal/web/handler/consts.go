// Package handler holds what all REST handlers share.
package handler

import "errors"

const (
	// APIPath is the root path of the REST resources.
	APIPath = "/api"

	// ParamID is the route parameter carrying the entity id.
	ParamID = "id"

	// QuerySort is the repeatable query parameter sorting list results, e.g. sort=id,desc.
	QuerySort = "sort"
)

// ErrNilACD is returned by Init if app or cfg or db is nil.
var ErrNilACD = errors.New("app, cfg or db is nil")
