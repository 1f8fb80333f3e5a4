package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidMovie indicates validation failure for movie data.
	ErrInvalidMovie = errors.New("invalid movie")
	// ErrInvalidReview indicates validation failure for review data.
	ErrInvalidReview = errors.New("invalid review")
)

// Genre is the closed set of catalog categories a movie can belong to.
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreHorror      Genre = "Horror"
	GenreRomance     Genre = "Romance"
	GenreThriller    Genre = "Thriller"
	GenreSciFi       Genre = "SciFi"
	GenreDocumentary Genre = "Documentary"
)

var genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreRomance,
	GenreThriller,
	GenreSciFi,
	GenreDocumentary,
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	for _, known := range genres {
		if g == known {
			return true
		}
	}
	return false
}

// Movie models a catalog entry owning zero or more reviews.
type Movie struct {
	ID                int64
	Title             string
	Description       string
	Genre             Genre
	DurationInMinutes int
	YearOfRelease     int
	Director          string
	DateAdded         time.Time
	Rating            float64
	Watched           bool
}

// Review models a single review belonging to exactly one movie.
type Review struct {
	ID        int64
	MovieID   int64
	Text      string
	Important bool
	DateTime  time.Time
}

// ValidateMovie checks a movie before it is persisted.
func ValidateMovie(m Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidMovie)
	}
	if !m.Genre.Valid() {
		return fmt.Errorf("%w: unknown genre %q", ErrInvalidMovie, m.Genre)
	}
	if m.DurationInMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidMovie)
	}
	if m.Rating < 0 || m.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0 and 10", ErrInvalidMovie)
	}
	return nil
}

// ValidateReview checks a review before it is persisted.
func ValidateReview(r Review) error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: text is required", ErrInvalidReview)
	}
	return nil
}
