package service

import (
	"drone-spot-api/model"
	"drone-spot-api/repository"
	"errors"
)

// ErrNotReviewOwner is returned when a non-admin tries to delete someone
// else's review.
var ErrNotReviewOwner = errors.New("review belongs to another user")

type ReviewService struct {
	repo repository.IReviewRepository
}

func NewReviewService(repo repository.IReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) CreateReview(writerUID string, req *model.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		SpotID:    req.SpotID,
		WriterUID: writerUID,
		DroneType: req.DroneType,
		Date:      req.Date,
		Comment:   req.Comment,
		Photo:     req.Photo,
	}
	if err := s.repo.CreateReview(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListReviewsBySpot(spotID int) ([]*model.Review, error) {
	return s.repo.GetReviewsBySpotID(spotID)
}

// DeleteReview removes a review. Only the writer or an admin may delete it.
func (s *ReviewService) DeleteReview(id int, callerUID string, callerLevel int) error {
	review, err := s.repo.GetReviewByID(id)
	if err != nil {
		return err
	}
	if review.WriterUID != callerUID && callerLevel < model.LevelAdmin {
		return ErrNotReviewOwner
	}
	return s.repo.DeleteReview(id)
}
