package database

import (
	"context"
	"errors"

	"moviestore/movie"

	"gorm.io/gorm"
)

// MovieModel represents the database model for movies
type MovieModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false"`
	Title       string  `gorm:"not null"`
	Director    string  `gorm:"not null"`
	ReleaseYear int     `gorm:"column:release_year;not null"`
	Rating      float64 `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (MovieModel) TableName() string {
	return "movies"
}

// MovieRepository implements movie.Repository interface
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) AllMovies(ctx context.Context) ([]movie.Movie, error) {
	var models []MovieModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(models))
	for i, model := range models {
		movies[i] = toDomainMovie(model)
	}
	return movies, nil
}

// CreateMovie inserts m unless its id is taken. The existence check and the
// insert share a transaction; a concurrent insert that wins the race still
// trips the primary key and is reported as movie.ErrMovieExists.
func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&MovieModel{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return movie.ErrMovieExists
		}

		model := toMovieModel(m)
		if err := tx.Create(&model).Error; err != nil {
			if isDuplicateKeyError(err) {
				return movie.ErrMovieExists
			}
			return err
		}
		return nil
	})
}

func (r *MovieRepository) GetMovie(ctx context.Context, id int64) (movie.Movie, error) {
	var model MovieModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return movie.Movie{}, movie.ErrMovieNotFound
		}
		return movie.Movie{}, err
	}

	return toDomainMovie(model), nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MovieModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return movie.ErrMovieNotFound
	}
	return nil
}

func toMovieModel(m movie.Movie) MovieModel {
	return MovieModel{
		ID:          m.ID,
		Title:       m.Title,
		Director:    m.Director,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
	}
}

func toDomainMovie(model MovieModel) movie.Movie {
	return movie.Movie{
		ID:          model.ID,
		Title:       model.Title,
		Director:    model.Director,
		ReleaseYear: model.ReleaseYear,
		Rating:      model.Rating,
	}
}
