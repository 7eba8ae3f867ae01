package httpserver

import (
	"moviestore/movie"
)

// AddMovieRequest uses pointers for numeric fields so an omitted field is
// told apart from a zero value.
type AddMovieRequest struct {
	ID          *int64   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,notblank"`
	Director    string   `json:"director" validate:"required,notblank"`
	ReleaseYear *int     `json:"release_year" validate:"required,gt=1888"`
	Rating      *float64 `json:"rating" validate:"required,gte=0,lte=10"`
}

func (r AddMovieRequest) ToMovie() movie.Movie {
	m := movie.Movie{
		Title:    r.Title,
		Director: r.Director,
	}
	if r.ID != nil {
		m.ID = *r.ID
	}
	if r.ReleaseYear != nil {
		m.ReleaseYear = *r.ReleaseYear
	}
	if r.Rating != nil {
		m.Rating = *r.Rating
	}
	return m
}
