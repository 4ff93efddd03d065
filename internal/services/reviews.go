package services

import (
	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

// ReviewService handles pizza reviews for the connected client.
type ReviewService interface {
	// Submit records a review of the pizza by the connected client. The
	// client must have received the pizza in a processed order and must
	// not have reviewed it already.
	Submit(p *models.Pizza, score int, comment string) error
	// ReviewsOf returns the reviews attached to a pizza.
	ReviewsOf(p *models.Pizza) []*models.Review
	// AverageScore returns the pizza's mean score, -1 when unreviewed, or
	// -2 for a nil pizza.
	AverageScore(p *models.Pizza) float64
}

type reviewService struct {
	accounts AccountService
}

// NewReviewService creates a review service bound to the session held by
// the account service.
func NewReviewService(accounts AccountService) ReviewService {
	return &reviewService{accounts: accounts}
}

func (s *reviewService) Submit(p *models.Pizza, score int, comment string) error {
	client := s.accounts.CurrentSession()
	if client == nil {
		return ErrNotConnected
	}
	if p == nil {
		return ErrPizzaNotFound
	}
	if !client.CanReview(p) {
		return ErrReviewNotEligible
	}
	if p.ReviewedBy(client) {
		return ErrAlreadyReviewed
	}
	review, err := models.NewReview(score, comment, client)
	if err != nil {
		return err
	}
	p.AttachReview(review)
	return nil
}

func (s *reviewService) ReviewsOf(p *models.Pizza) []*models.Review {
	if p == nil {
		return nil
	}
	return append([]*models.Review(nil), p.Reviews...)
}

func (s *reviewService) AverageScore(p *models.Pizza) float64 {
	if p == nil {
		return -2
	}
	return p.AverageScore()
}
