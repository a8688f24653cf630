// Package handlers holds the echo handlers for every API resource. Thin
// catalog resources talk to their repositories directly; resources with
// business rules (profiles, languages, favorites, attendees) go through
// the service layer.
package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/noobgg-team/noobgg/common/apperr"
	"github.com/noobgg-team/noobgg/common/logger"
	"github.com/noobgg-team/noobgg/common/models"
	"github.com/noobgg-team/noobgg/common/query"
)

// messageResponse is the body of every non-validation error and of
// message-only successes
type messageResponse struct {
	Message string `json:"message"`
}

// fieldErrorsResponse is the body of a 400 validation failure
type fieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}

// listResponse is the envelope of every paginated list
type listResponse struct {
	Data       any              `json:"data"`
	Pagination query.Pagination `json:"pagination"`
}

// badBody is the uniform error for a request body echo could not bind
func badBody() error {
	return apperr.BadRequest("Invalid request body")
}

// respondError maps a service error onto the wire. Unexpected errors are
// logged with their cause and surface as a bare 500 message.
func respondError(c echo.Context, log *logger.Logger, err error) error {
	appErr := apperr.From(err)

	if appErr.Kind == apperr.KindInternal {
		log.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", appErr.Unwrap(),
		)
	}

	if appErr.Kind == apperr.KindValidation {
		return c.JSON(appErr.Status(), fieldErrorsResponse{Errors: appErr.Fields})
	}
	return c.JSON(appErr.Status(), messageResponse{Message: appErr.Message})
}

// pathID parses a decimal id path parameter
func pathID(c echo.Context, name string) (models.ID, error) {
	id, err := models.ParseID(c.Param(name))
	if err != nil {
		return 0, apperr.BadRequest("Invalid id")
	}
	return id, nil
}

// listParams reads paging/sort/search query parameters. Non-numeric paging
// values read as zero and fall back to defaults during Normalize.
func listParams(c echo.Context) query.ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return query.ListParams{
		Page:      page,
		Limit:     limit,
		Search:    c.QueryParam("search"),
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
}
