package handlers

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"foodorders/internal/store"
)

type errorBody struct {
	OK    bool    `json:"ok"`
	Error string  `json:"error"`
	Stack *string `json:"stack"`
}

func httpStatus(err error) int {
	switch store.KindOf(err) {
	case store.KindBadRequest:
		return http.StatusBadRequest
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError maps the store error taxonomy onto HTTP statuses. A stack
// trace is attached only to 500s, and only when debug responses are enabled.
func respondError(c *gin.Context, includeStack bool, err error) {
	status := httpStatus(err)
	body := errorBody{Error: err.Error()}
	if status == http.StatusInternalServerError && includeStack {
		trace := string(debug.Stack())
		body.Stack = &trace
	}
	c.AbortWithStatusJSON(status, body)
}
