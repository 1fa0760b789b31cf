package review

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MaxCommentLength = 1000
	minRatingTenths  = 10
	maxRatingTenths  = 50
)

// Rating is stored in tenths so that 4.5 is 45.
type Rating struct {
	tenths int
}

func NewRating(tenths int) (Rating, error) {
	if tenths < minRatingTenths || tenths > maxRatingTenths {
		return Rating{}, ErrInvalidRating
	}
	return Rating{tenths: tenths}, nil
}

func RatingFromFloat(v float64) (Rating, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rating{}, ErrInvalidRatingFormat
	}
	scaled := v * 10
	tenths := math.Round(scaled)
	if math.Abs(scaled-tenths) > 1e-6 {
		return Rating{}, ErrRatingStep
	}
	return NewRating(int(tenths))
}

// ParseRating reads "4", "4.5" or "4.50"; more precision than a tenth fails
// with ErrRatingStep.
func ParseRating(s string) (Rating, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Rating{}, ErrInvalidRatingFormat
	}
	return RatingFromFloat(v)
}

func (r Rating) Tenths() int    { return r.tenths }
func (r Rating) Value() float64 { return float64(r.tenths) / 10 }
func (r Rating) String() string { return strconv.FormatFloat(r.Value(), 'f', 1, 64) }

// Comment is optional; a blank comment is stored as absent.
type Comment struct {
	text *string
}

func NewComment(s *string) (Comment, error) {
	if s == nil {
		return Comment{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Comment{}, nil
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: &t}, nil
}

func (c Comment) Text() *string { return c.text }

func (c Comment) String() string {
	if c.text == nil {
		return ""
	}
	return *c.text
}
