package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"moviecatalog/internal/models"
)

// reviewRepository handles review data persistence
type reviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// CreateReview inserts a new review linked to its owning movie.
func (r *reviewRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.DateTime.IsZero() {
		review.DateTime = time.Now()
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (movie_id, text, important, date_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, review.MovieID, review.Text, review.Important, review.DateTime).Scan(&id)

	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	review.ID = id
	return review, nil
}

// GetReviewByID retrieves a review by id.
func (r *reviewRepository) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	review := &models.Review{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, movie_id, text, important, date_time
		FROM reviews
		WHERE id = $1
	`, id).Scan(&review.ID, &review.MovieID, &review.Text, &review.Important, &review.DateTime)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return review, nil
}

// ListReviewsByMovie retrieves every review owned by the given movie.
func (r *reviewRepository) ListReviewsByMovie(ctx context.Context, movieID int64) ([]*models.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, movie_id, text, important, date_time
		FROM reviews
		WHERE movie_id = $1
		ORDER BY date_time DESC, id ASC
	`, movieID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		review := &models.Review{}
		err := rows.Scan(&review.ID, &review.MovieID, &review.Text, &review.Important, &review.DateTime)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// DeleteReview removes a review by its own id.
func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM reviews
		WHERE id = $1
	`, id)

	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
