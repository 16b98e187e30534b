// Package handlers holds the HTTP layer: request DTOs, the response
// envelope, and the Gin handlers for both storage modes.
package handlers

import "foodorders/internal/store"

// Stores carries one adapter per mode so every handler can serve
// /:mode/... routes without knowing which engine backs them.
type Stores struct {
	SQL   store.Store
	Mongo store.Store
}

func (s Stores) byMode(mode string) (store.Store, error) {
	switch mode {
	case "sql":
		return s.SQL, nil
	case "mongo":
		return s.Mongo, nil
	}
	return nil, store.BadRequestf("unknown mode %q, want sql or mongo", mode)
}
