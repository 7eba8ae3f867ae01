package errs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"moviestore/errs"

	"github.com/stretchr/testify/assert"
)

var (
	errMovieExists   = errs.Errorf(errs.ECONFLICT, "a movie with this id already exists")
	errMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
	errFutureYear    = errs.Errorf(errs.EINVALID, "release year cannot be in the future")
)

func TestError_Error(t *testing.T) {
	assert.Equal(t,
		"application error: code=conflict message=a movie with this id already exists",
		errMovieExists.Error(),
	)
	assert.Equal(t, "application error: code=internal message=", (&errs.Error{Code: errs.EINTERNAL}).Error())
}

func TestErrorCodeAndMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    string
		message string
	}{
		{name: "nil", err: nil, code: "", message: ""},
		{name: "duplicate id", err: errMovieExists, code: errs.ECONFLICT, message: "a movie with this id already exists"},
		{name: "absent movie", err: errMovieNotFound, code: errs.ENOTFOUND, message: "movie not found"},
		{name: "validation failure", err: errFutureYear, code: errs.EINVALID, message: "release year cannot be in the future"},
		{
			name:    "wrapped by a repository",
			err:     fmt.Errorf("create movie 1: %w", errMovieExists),
			code:    errs.ECONFLICT,
			message: "a movie with this id already exists",
		},
		{
			name:    "joined with a cleanup error",
			err:     errors.Join(errors.New("rollback failed"), errMovieNotFound),
			code:    errs.ENOTFOUND,
			message: "movie not found",
		},
		{name: "backend failure", err: errors.New("database is locked"), code: errs.EINTERNAL, message: "Internal error."},
		{name: "cancelled request", err: context.Canceled, code: errs.EINTERNAL, message: "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, errs.ErrorCode(tt.err))
			assert.Equal(t, tt.message, errs.ErrorMessage(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.EINVALID, "release year must be after %d", 1888)

	assert.Equal(t, errs.EINVALID, err.Code)
	assert.Equal(t, "release year must be after 1888", err.Message)

	var target *errs.Error
	assert.True(t, errors.As(fmt.Errorf("row 3: %w", err), &target))
	assert.Same(t, err, target)
}
