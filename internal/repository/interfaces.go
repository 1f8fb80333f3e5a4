package repository

import (
	"context"
	"errors"

	"moviecatalog/internal/models"
)

var (
	// ErrMovieNotFound signals a missing movie record.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrReviewNotFound signals a missing review record.
	ErrReviewNotFound = errors.New("review not found")
)

// MovieRepository defines the persistence gateway for movie records.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error)
	GetMovieByID(ctx context.Context, id int64) (*models.Movie, error)
	ListMovies(ctx context.Context) ([]*models.Movie, error)
	// DeleteMovie removes the movie and every review it owns in one
	// transaction. Returns ErrMovieNotFound if the movie does not exist.
	DeleteMovie(ctx context.Context, id int64) error
	MovieExists(ctx context.Context, id int64) (bool, error)
}

// ReviewRepository defines the persistence gateway for review records.
type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	GetReviewByID(ctx context.Context, id int64) (*models.Review, error)
	ListReviewsByMovie(ctx context.Context, movieID int64) ([]*models.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}
