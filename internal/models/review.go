package models

import "fmt"

// Review is a client's rating of a pizza: a score between 0 and 5 and a
// free-text comment.
type Review struct {
	Score   int     `json:"score"`
	Comment string  `json:"comment"`
	Author  *Client `json:"-"`
}

// NewReview creates a review. The score must be between 0 and 5 and the
// author must be known.
func NewReview(score int, comment string, author *Client) (*Review, error) {
	if score < 0 || score > 5 {
		return nil, fmt.Errorf("score %d out of range [0,5]", score)
	}
	if author == nil {
		return nil, fmt.Errorf("review needs an author")
	}
	return &Review{Score: score, Comment: comment, Author: author}, nil
}
