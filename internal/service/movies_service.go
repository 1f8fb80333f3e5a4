package service

import (
	"context"
	"fmt"

	"moviecatalog/internal/models"
	"moviecatalog/internal/repository"
)

// MoviesService handles catalog business logic. It is stateless between
// calls; all state lives behind the repositories.
type MoviesService struct {
	movies  repository.MovieRepository
	reviews repository.ReviewRepository
}

// NewMoviesService creates a new movies service
func NewMoviesService(movies repository.MovieRepository, reviews repository.ReviewRepository) *MoviesService {
	return &MoviesService{movies: movies, reviews: reviews}
}

// ListMovies returns every movie in the catalog as view shapes.
func (s *MoviesService) ListMovies(ctx context.Context) (models.MovieList, error) {
	movies, err := s.movies.ListMovies(ctx)
	if err != nil {
		return models.MovieList{}, fmt.Errorf("list movies: %w", err)
	}

	views := make([]models.MovieView, 0, len(movies))
	for _, movie := range movies {
		views = append(views, models.MovieToView(*movie))
	}

	return models.MovieList{Movies: views, TotalEntities: len(views)}, nil
}

// GetMovie retrieves a single movie by id.
func (s *MoviesService) GetMovie(ctx context.Context, id int64) (models.MovieView, error) {
	movie, err := s.movies.GetMovieByID(ctx, id)
	if err != nil {
		return models.MovieView{}, fmt.Errorf("get movie: %w", err)
	}
	return models.MovieToView(*movie), nil
}

// CreateMovie validates and persists a new movie, returning the created
// record with its store-assigned id. Validation failures are reported before
// anything is written.
func (s *MoviesService) CreateMovie(ctx context.Context, view models.MovieView) (models.MovieView, error) {
	movie := models.MovieFromView(view)
	if err := models.ValidateMovie(movie); err != nil {
		return models.MovieView{}, err
	}

	created, err := s.movies.CreateMovie(ctx, &movie)
	if err != nil {
		return models.MovieView{}, fmt.Errorf("create movie: %w", err)
	}

	return models.MovieToView(*created), nil
}

// DeleteMovie removes a movie and every review it owns. Deleting an id that
// does not exist reports not-found and leaves the store untouched.
func (s *MoviesService) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.movies.DeleteMovie(ctx, id); err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return nil
}

// ListReviews returns every review owned by the given movie. A movie with no
// reviews yields an empty list; a missing movie yields not-found.
func (s *MoviesService) ListReviews(ctx context.Context, movieID int64) (models.ReviewList, error) {
	exists, err := s.movies.MovieExists(ctx, movieID)
	if err != nil {
		return models.ReviewList{}, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return models.ReviewList{}, fmt.Errorf("list reviews: %w", repository.ErrMovieNotFound)
	}

	reviews, err := s.reviews.ListReviewsByMovie(ctx, movieID)
	if err != nil {
		return models.ReviewList{}, fmt.Errorf("list reviews: %w", err)
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, models.ReviewToView(*review))
	}

	return models.ReviewList{Reviews: views, TotalEntities: len(views)}, nil
}

// AddReview validates the review, confirms the owning movie exists, and
// persists the review linked to it. A missing movie yields not-found and
// never creates an orphan review.
func (s *MoviesService) AddReview(ctx context.Context, movieID int64, view models.ReviewView) (models.ReviewView, error) {
	review := models.ReviewFromView(movieID, view)
	if err := models.ValidateReview(review); err != nil {
		return models.ReviewView{}, err
	}

	exists, err := s.movies.MovieExists(ctx, movieID)
	if err != nil {
		return models.ReviewView{}, fmt.Errorf("check movie: %w", err)
	}
	if !exists {
		return models.ReviewView{}, fmt.Errorf("add review: %w", repository.ErrMovieNotFound)
	}

	created, err := s.reviews.CreateReview(ctx, &review)
	if err != nil {
		return models.ReviewView{}, fmt.Errorf("add review: %w", err)
	}

	return models.ReviewToView(*created), nil
}

// DeleteReview removes a review by its own id, regardless of which movie
// owns it.
func (s *MoviesService) DeleteReview(ctx context.Context, reviewID int64) error {
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
