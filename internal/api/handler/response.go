package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/magicvilla/villa-api/internal/core/domain"
)

// APIResponse is the envelope every resource and auth endpoint answers with.
// StatusCode always equals the HTTP status of the response.
type APIResponse struct {
	StatusCode    int      `json:"statusCode"`
	IsSuccess     bool     `json:"isSuccess"`
	Result        any      `json:"result,omitempty"`
	ErrorMessages []string `json:"errorMessages"`
}

// Failure builds an unsuccessful envelope.
func Failure(code int, msgs ...string) APIResponse {
	if msgs == nil {
		msgs = []string{}
	}
	return APIResponse{StatusCode: code, IsSuccess: false, ErrorMessages: msgs}
}

func respond(c echo.Context, code int, result any) error {
	return c.JSON(code, APIResponse{
		StatusCode:    code,
		IsSuccess:     true,
		Result:        result,
		ErrorMessages: []string{},
	})
}

// bindAndValidate decodes the JSON body into dst and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domain.NewValidationError("request body is not valid JSON")
	}
	return c.Validate(dst)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domain.NewValidationError("id must be an integer")
	}
	return id, nil
}

// location resolves the item URL for a created resource relative to the
// collection it was posted to.
func location(c echo.Context, id int) string {
	return strings.TrimRight(c.Request().URL.Path, "/") + "/" + strconv.Itoa(id)
}

func created(c echo.Context, id int, result any) error {
	c.Response().Header().Set(echo.HeaderLocation, location(c, id))
	return respond(c, http.StatusCreated, result)
}
