package movie

import (
	"context"
	"time"
)

type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	GetMovie(ctx context.Context, id int64) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// Repository persists movies. CreateMovie must return ErrMovieExists when the
// id is taken, GetMovie and DeleteMovie must return ErrMovieNotFound when it
// is absent.
type Repository interface {
	AllMovies(ctx context.Context) ([]Movie, error)
	CreateMovie(ctx context.Context, m Movie) error
	GetMovie(ctx context.Context, id int64) (Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type Usecase struct {
	r   Repository
	now func() time.Time
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{
		r:   r,
		now: time.Now,
	}
}

// WithClock replaces the time source used for release year validation.
func (uc *Usecase) WithClock(now func() time.Time) *Usecase {
	uc.now = now
	return uc
}

func (uc *Usecase) ListMovies(ctx context.Context) ([]Movie, error) {
	return uc.r.AllMovies(ctx)
}

func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if err := m.Validate(uc.now()); err != nil {
		return Movie{}, err
	}
	if err := uc.r.CreateMovie(ctx, m); err != nil {
		return Movie{}, err
	}
	return m, nil
}

func (uc *Usecase) GetMovie(ctx context.Context, id int64) (Movie, error) {
	return uc.r.GetMovie(ctx, id)
}

func (uc *Usecase) DeleteMovie(ctx context.Context, id int64) error {
	return uc.r.DeleteMovie(ctx, id)
}
