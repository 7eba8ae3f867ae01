package httpserver

import (
	"strconv"

	"moviestore/errs"

	"github.com/labstack/echo/v4"
)

const movieDeletedMessage = "movie deleted"

var (
	errInvalidMovieID = errs.Errorf(errs.EINVALID, "movie id must be an integer")
	errInvalidBody    = errs.Errorf(errs.EINVALID, "invalid request body")
	errNoMovieService = errs.Errorf(errs.ENOTIMPLEMENTED, "movie service not configured")
)

// registerMovieRoutes mounts the movie endpoints on g, rendering successful
// bodies with w.
func (s *Server) registerMovieRoutes(g *echo.Group, w movieWriter) {
	g.GET("/movies", s.handleListMovies(w))
	g.POST("/movies", s.handleAddMovie(w))
	g.GET("/movies/:id", s.handleGetMovie(w))
	g.DELETE("/movies/:id", s.handleDeleteMovie(w))
}

func (s *Server) handleListMovies(w movieWriter) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errNoMovieService
		}

		movies, err := s.MovieService.ListMovies(c.Request().Context())
		if err != nil {
			return err
		}
		return w.writeMovies(c, movies)
	}
}

func (s *Server) handleAddMovie(w movieWriter) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errNoMovieService
		}

		var req AddMovieRequest
		if err := c.Bind(&req); err != nil {
			return errInvalidBody
		}
		if err := c.Validate(&req); err != nil {
			return err
		}

		created, err := s.MovieService.AddMovie(c.Request().Context(), req.ToMovie())
		if err != nil {
			return err
		}
		return w.writeCreated(c, created)
	}
}

func (s *Server) handleGetMovie(w movieWriter) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errNoMovieService
		}

		id, err := movieID(c)
		if err != nil {
			return err
		}

		m, err := s.MovieService.GetMovie(c.Request().Context(), id)
		if err != nil {
			return err
		}
		return w.writeMovie(c, m)
	}
}

func (s *Server) handleDeleteMovie(w movieWriter) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.MovieService == nil {
			return errNoMovieService
		}

		id, err := movieID(c)
		if err != nil {
			return err
		}

		if err := s.MovieService.DeleteMovie(c.Request().Context(), id); err != nil {
			return err
		}
		return w.writeMessage(c, movieDeletedMessage)
	}
}

func movieID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidMovieID
	}
	return id, nil
}
