package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moviecatalog/internal/models"
)

// movieRepository handles movie data persistence
type movieRepository struct {
	db *sql.DB
}

// NewMovieRepository creates a new movie repository
func NewMovieRepository(db *sql.DB) MovieRepository {
	return &movieRepository{db: db}
}

// CreateMovie inserts a new movie and returns it with its assigned id.
func (r *movieRepository) CreateMovie(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	if movie.DateAdded.IsZero() {
		movie.DateAdded = time.Now()
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO movies (title, description, genre, duration_minutes, year_of_release, director, date_added, rating, watched)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, movie.Title, movie.Description, string(movie.Genre), movie.DurationInMinutes,
		movie.YearOfRelease, movie.Director, movie.DateAdded, movie.Rating, movie.Watched).Scan(&id)

	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	movie.ID = id
	return movie, nil
}

// GetMovieByID retrieves a movie by id.
func (r *movieRepository) GetMovieByID(ctx context.Context, id int64) (*models.Movie, error) {
	movie := &models.Movie{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, genre, duration_minutes, year_of_release, director, date_added, rating, watched
		FROM movies
		WHERE id = $1
	`, id).Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Genre, &movie.DurationInMinutes,
		&movie.YearOfRelease, &movie.Director, &movie.DateAdded, &movie.Rating, &movie.Watched)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("get movie: %w", err)
	}

	return movie, nil
}

// ListMovies retrieves every movie in the catalog.
func (r *movieRepository) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, genre, duration_minutes, year_of_release, director, date_added, rating, watched
		FROM movies
		ORDER BY date_added DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()

	var movies []*models.Movie
	for rows.Next() {
		movie := &models.Movie{}
		err := rows.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Genre, &movie.DurationInMinutes,
			&movie.YearOfRelease, &movie.Director, &movie.DateAdded, &movie.Rating, &movie.Watched)
		if err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

// DeleteMovie removes a movie and its reviews in a single transaction so a
// crash mid-operation cannot leave orphaned reviews.
func (r *movieRepository) DeleteMovie(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE movie_id = $1
	`, id); err != nil {
		return fmt.Errorf("delete reviews: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM movies
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMovieNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

// MovieExists reports whether a movie with the given id is persisted.
func (r *movieRepository) MovieExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check movie exists: %w", err)
	}
	return exists, nil
}
