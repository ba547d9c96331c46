package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/retriever-essentials/pantry/internal/result"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: err.Error(),
	})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// respondResult maps a service Result onto the HTTP surface: payload on
// success, 404 when something referenced by id was missing, 400 otherwise
// with every accumulated message.
func respondResult[T any](c echo.Context, res *result.Result[T], successStatus int) error {
	if res.IsSuccess() {
		if successStatus == http.StatusNoContent {
			return c.NoContent(successStatus)
		}
		return c.JSON(successStatus, res.Payload())
	}

	status := http.StatusBadRequest
	if res.Kind() == result.NotFound {
		status = http.StatusNotFound
	}
	return c.JSON(status, map[string]any{"messages": res.Messages()})
}
