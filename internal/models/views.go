package models

import "time"

// MovieView is the external representation of a movie at the API boundary.
type MovieView struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Genre             Genre     `json:"genre"`
	DurationInMinutes int       `json:"durationInMinutes"`
	YearOfRelease     int       `json:"yearOfRelease"`
	Director          string    `json:"director"`
	DateAdded         time.Time `json:"dateAdded"`
	Rating            float64   `json:"rating"`
	Watched           bool      `json:"watched"`
}

// ReviewView is the external representation of a review.
type ReviewView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Important bool      `json:"important"`
	DateTime  time.Time `json:"dateTime"`
}

// MovieList wraps a movie collection result. TotalEntities carries the size
// of the result set so clients can make pagination decisions.
type MovieList struct {
	Movies        []MovieView `json:"movies"`
	TotalEntities int         `json:"totalEntities"`
}

// ReviewList wraps a review collection result.
type ReviewList struct {
	Reviews       []ReviewView `json:"reviews"`
	TotalEntities int          `json:"totalEntities"`
}

// MovieToView translates a persisted movie into its API shape.
func MovieToView(m Movie) MovieView {
	return MovieView{
		ID:                m.ID,
		Title:             m.Title,
		Description:       m.Description,
		Genre:             m.Genre,
		DurationInMinutes: m.DurationInMinutes,
		YearOfRelease:     m.YearOfRelease,
		Director:          m.Director,
		DateAdded:         m.DateAdded,
		Rating:            m.Rating,
		Watched:           m.Watched,
	}
}

// MovieFromView translates an incoming movie shape into the persisted form.
// The store assigns the identity, so the view's ID is ignored.
func MovieFromView(v MovieView) Movie {
	return Movie{
		Title:             v.Title,
		Description:       v.Description,
		Genre:             v.Genre,
		DurationInMinutes: v.DurationInMinutes,
		YearOfRelease:     v.YearOfRelease,
		Director:          v.Director,
		DateAdded:         v.DateAdded,
		Rating:            v.Rating,
		Watched:           v.Watched,
	}
}

// ReviewToView translates a persisted review into its API shape.
func ReviewToView(r Review) ReviewView {
	return ReviewView{
		ID:        r.ID,
		Text:      r.Text,
		Important: r.Important,
		DateTime:  r.DateTime,
	}
}

// ReviewFromView translates an incoming review shape into the persisted form.
// The owning movie is supplied by the caller, not the view.
func ReviewFromView(movieID int64, v ReviewView) Review {
	return Review{
		MovieID:   movieID,
		Text:      v.Text,
		Important: v.Important,
		DateTime:  v.DateTime,
	}
}
