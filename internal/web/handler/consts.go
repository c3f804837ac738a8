// Package handler holds shared constants and the common handler interface.
package handler

const (
	// RootPath is the root path of the route group.
	RootPath = "/"

	// AdminPath is the base path of the admin panel.
	AdminPath = "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
