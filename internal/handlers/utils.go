package handlers

import (
	"time"

	"github.com/labstack/echo/v4"
)

const dateParamLayout = "2006-01-02"

// parseDateParam reads a YYYY-MM-DD query parameter. The ok result is false
// when the parameter is absent; a present but malformed value returns an
// error.
func parseDateParam(c echo.Context, name string) (time.Time, bool, error) {
	param := c.QueryParam(name)
	if param == "" {
		return time.Time{}, false, nil
	}

	value, err := time.Parse(dateParamLayout, param)
	if err != nil {
		return time.Time{}, true, err
	}

	return value, true, nil
}
