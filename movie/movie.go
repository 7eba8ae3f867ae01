package movie

import (
	"math"
	"strings"
	"time"

	"moviestore/errs"
)

const (
	// FirstFilmYear is the year motion pictures were invented; release years
	// must be strictly greater.
	FirstFilmYear = 1888

	MinRating = 0.0
	MaxRating = 10.0
)

var (
	ErrInvalidTitle        = errs.Errorf(errs.EINVALID, "title is required")
	ErrInvalidDirector     = errs.Errorf(errs.EINVALID, "director is required")
	ErrReleaseYearTooEarly = errs.Errorf(errs.EINVALID, "release year must be after %d", FirstFilmYear)
	ErrReleaseYearInFuture = errs.Errorf(errs.EINVALID, "release year cannot be in the future")
	ErrInvalidRating       = errs.Errorf(errs.EINVALID, "rating must be between %g and %g", MinRating, MaxRating)

	ErrMovieExists   = errs.Errorf(errs.ECONFLICT, "a movie with this id already exists")
	ErrMovieNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")
)

type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Director    string  `json:"director"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
}

// Validate checks m against the record rules. The upper bound of the release
// year is the calendar year of now, so the same record can be valid or not
// depending on when it is checked.
func (m Movie) Validate(now time.Time) error {
	if strings.TrimSpace(m.Title) == "" {
		return ErrInvalidTitle
	}

	if strings.TrimSpace(m.Director) == "" {
		return ErrInvalidDirector
	}

	if m.ReleaseYear <= FirstFilmYear {
		return ErrReleaseYearTooEarly
	}

	if m.ReleaseYear > now.Year() {
		return ErrReleaseYearInFuture
	}

	if math.IsNaN(m.Rating) || m.Rating < MinRating || m.Rating > MaxRating {
		return ErrInvalidRating
	}

	return nil
}
