package review_validator

import (
	"strings"

	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

const MinWords = 5

// Violation is the single reason a review submission was rejected.
type Violation struct {
	Code    string
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

var (
	ErrNameRequired      = &Violation{Code: "name_required", Message: "User name is required"}
	ErrRatingOutOfRange  = &Violation{Code: "rating_out_of_range", Message: "Rating must be between 1 and 5 stars"}
	ErrCommentRequired   = &Violation{Code: "comment_required", Message: "Review comment is required"}
	ErrInsufficientWords = &Violation{Code: "insufficient_words", Message: "Review must be at least 5 words"}
)

type rule struct {
	violated  func(req model.ReviewRequest) bool
	violation *Violation
}

// Order matters: the first violated rule wins.
var rules = []rule{
	{
		violated: func(req model.ReviewRequest) bool {
			return isBlank(req.UserName)
		},
		violation: ErrNameRequired,
	},
	{
		violated: func(req model.ReviewRequest) bool {
			return req.Rating < model.MinRating || req.Rating > model.MaxRating
		},
		violation: ErrRatingOutOfRange,
	},
	{
		violated: func(req model.ReviewRequest) bool {
			return isBlank(req.Comment)
		},
		violation: ErrCommentRequired,
	},
	{
		violated: func(req model.ReviewRequest) bool {
			return WordCount(strings.TrimSpace(req.Comment)) < MinWords
		},
		violation: ErrInsufficientWords,
	},
}

// Validate returns nil for an acceptable review, otherwise the *Violation
// of the first failing rule.
func Validate(req model.ReviewRequest) error {
	for _, r := range rules {
		if r.violated(req) {
			return r.violation
		}
	}
	return nil
}

// WordCount counts the runes of s that are not ' ' and are either first
// or preceded by ' '. Only the space character separates words: tabs and
// newlines do not.
func WordCount(s string) int {
	count := 0
	prev := ' '
	for _, r := range s {
		if r != ' ' && prev == ' ' {
			count++
		}
		prev = r
	}
	return count
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
