package models

import (
	"errors"
	"testing"
	"time"
)

func TestValidateMovie(t *testing.T) {
	valid := Movie{
		Title:             "Movie1 test",
		Description:       "Test",
		Genre:             GenreAction,
		DurationInMinutes: 128,
		YearOfRelease:     2020,
		Director:          "Test",
		DateAdded:         time.Now(),
		Rating:            9,
		Watched:           true,
	}

	tests := []struct {
		name    string
		mutate  func(*Movie)
		wantErr bool
	}{
		{
			name:   "valid movie",
			mutate: func(*Movie) {},
		},
		{
			name:    "missing title",
			mutate:  func(m *Movie) { m.Title = "   " },
			wantErr: true,
		},
		{
			name:    "unknown genre",
			mutate:  func(m *Movie) { m.Genre = "Musical" },
			wantErr: true,
		},
		{
			name:    "zero duration",
			mutate:  func(m *Movie) { m.DurationInMinutes = 0 },
			wantErr: true,
		},
		{
			name:    "negative duration",
			mutate:  func(m *Movie) { m.DurationInMinutes = -10 },
			wantErr: true,
		},
		{
			name:    "rating above range",
			mutate:  func(m *Movie) { m.Rating = 10.5 },
			wantErr: true,
		},
		{
			name:    "rating below range",
			mutate:  func(m *Movie) { m.Rating = -1 },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			movie := valid
			tc.mutate(&movie)
			err := ValidateMovie(movie)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMovie) {
					t.Fatalf("expected ErrInvalidMovie, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected nil error but got %v", err)
			}
		})
	}
}

func TestValidateReview(t *testing.T) {
	if err := ValidateReview(Review{MovieID: 1, Text: "review 1", Important: true}); err != nil {
		t.Fatalf("expected nil error but got %v", err)
	}

	err := ValidateReview(Review{MovieID: 1, Text: "  "})
	if !errors.Is(err, ErrInvalidReview) {
		t.Fatalf("expected ErrInvalidReview, got %v", err)
	}
}

func TestGenreValid(t *testing.T) {
	for _, g := range []Genre{GenreAction, GenreComedy, GenreDocumentary} {
		if !g.Valid() {
			t.Fatalf("expected %q to be valid", g)
		}
	}
	if Genre("Western").Valid() {
		t.Fatal("expected unknown genre to be invalid")
	}
}

func TestMovieViewRoundTrip(t *testing.T) {
	movie := Movie{
		ID:                1,
		Title:             "Movie1 test",
		Description:       "Test",
		Genre:             GenreAction,
		DurationInMinutes: 128,
		YearOfRelease:     2020,
		Director:          "Test",
		DateAdded:         time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC),
		Rating:            9,
		Watched:           true,
	}

	view := MovieToView(movie)
	if view.ID != movie.ID || view.Title != movie.Title || view.Genre != movie.Genre {
		t.Fatalf("view does not match entity: %+v", view)
	}

	back := MovieFromView(view)
	back.ID = movie.ID // the store assigns identity
	if back != movie {
		t.Fatalf("entity round trip mismatch:\n got %+v\nwant %+v", back, movie)
	}
}

func TestReviewFromViewLinksMovie(t *testing.T) {
	view := ReviewView{Text: "review 3", Important: true, DateTime: time.Now()}
	review := ReviewFromView(42, view)
	if review.MovieID != 42 {
		t.Fatalf("expected movie id 42, got %d", review.MovieID)
	}
	if review.ID != 0 {
		t.Fatalf("expected unset review id, got %d", review.ID)
	}
}
