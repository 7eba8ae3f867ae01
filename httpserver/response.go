package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"moviestore/errs"
	"moviestore/movie"

	"github.com/labstack/echo/v4"
)

// APIResponse wraps every body served under /api, errors included.
type APIResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
	Info    string      `json:"info,omitempty"`
}

// movieWriter renders successful movie responses for one route group.
type movieWriter interface {
	writeCreated(c echo.Context, m movie.Movie) error
	writeMovie(c echo.Context, m movie.Movie) error
	writeMovies(c echo.Context, movies []movie.Movie) error
	writeMessage(c echo.Context, message string) error
}

// plainWriter writes bare JSON documents: a movie, an array of movies or
// {"message": ...}.
type plainWriter struct{}

func (plainWriter) writeCreated(c echo.Context, m movie.Movie) error {
	return c.JSON(http.StatusOK, m)
}

func (plainWriter) writeMovie(c echo.Context, m movie.Movie) error {
	return c.JSON(http.StatusOK, m)
}

func (plainWriter) writeMovies(c echo.Context, movies []movie.Movie) error {
	if movies == nil {
		movies = []movie.Movie{}
	}
	return c.JSON(http.StatusOK, movies)
}

func (plainWriter) writeMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// envelopeWriter puts the payload in APIResponse.Result.
type envelopeWriter struct{}

func (envelopeWriter) writeCreated(c echo.Context, m movie.Movie) error {
	return writeEnvelope(c, http.StatusCreated, m)
}

func (envelopeWriter) writeMovie(c echo.Context, m movie.Movie) error {
	return writeEnvelope(c, http.StatusOK, m)
}

func (envelopeWriter) writeMovies(c echo.Context, movies []movie.Movie) error {
	if movies == nil {
		movies = []movie.Movie{}
	}
	return writeEnvelope(c, http.StatusOK, map[string][]movie.Movie{"data": movies})
}

func (envelopeWriter) writeMessage(c echo.Context, message string) error {
	return writeEnvelope(c, http.StatusOK, map[string]string{"message": message})
}

func writeEnvelope(c echo.Context, status int, result interface{}) error {
	return c.JSON(status, APIResponse{
		Code:    strconv.Itoa(status),
		Message: http.StatusText(status),
		Result:  result,
	})
}

func writeError(c echo.Context, status int, message string, err error) error {
	return c.JSON(status, APIResponse{
		Code:    envelopeCode(err, status),
		Message: message,
	})
}

// envelopeCode is the machine readable code of an error body. Application
// errors have fixed codes, everything else is 100 followed by the status.
func envelopeCode(err error, status int) string {
	switch errs.ErrorCode(err) {
	case errs.EINVALID:
		return "100010"
	case errs.ENOTFOUND:
		return "100404"
	case errs.ECONFLICT:
		return "100409"
	case errs.ENOTIMPLEMENTED:
		return "100501"
	}
	return fmt.Sprintf("100%03d", status)
}
