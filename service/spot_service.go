// file: service/spot_service.go

package service

import (
	"context"
	"drone-spot-api/model"
	"drone-spot-api/repository"
	"encoding/json"
	"time"
)

const spotListCacheKey = "spots:all"

// SpotService handles drone spot reads and writes, with a cache-aside
// strategy on the full listing.
type SpotService struct {
	repo  repository.ISpotRepository
	cache ICacheClient
}

func NewSpotService(repo repository.ISpotRepository, cache ICacheClient) *SpotService {
	return &SpotService{repo: repo, cache: cache}
}

// CreateSpot saves a new spot and invalidates the listing cache.
func (s *SpotService) CreateSpot(req *model.CreateSpotRequest) (*model.Spot, error) {
	spot := &model.Spot{
		Name:    req.Name,
		Lat:     req.Lat,
		Lon:     req.Lon,
		Area:    req.Area,
		Comment: req.Comment,
		Permit:  req.Permit,
		Photo:   req.Photo,
	}
	if err := s.repo.CreateSpot(spot); err != nil {
		return nil, err
	}

	s.cache.Del(context.Background(), spotListCacheKey)

	return spot, nil
}

// ListSpots lists every spot, serving from the cache when possible.
func (s *SpotService) ListSpots() ([]*model.Spot, error) {
	ctx := context.Background()

	cached, err := s.cache.Get(ctx, spotListCacheKey).Result()
	if err == nil {
		var spots []*model.Spot
		if err := json.Unmarshal([]byte(cached), &spots); err == nil {
			return spots, nil
		}
	}

	spots, err := s.repo.GetAllSpots()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(spots); err == nil {
		s.cache.Set(ctx, spotListCacheKey, data, 10*time.Minute)
	}

	return spots, nil
}

func (s *SpotService) GetSpot(id int) (*model.Spot, error) {
	return s.repo.GetSpotByID(id)
}

// LikeSpot records a like; liking twice is a no-op.
func (s *SpotService) LikeSpot(spotID int, userUID string) error {
	if err := s.repo.AddLike(spotID, userUID); err != nil {
		return err
	}
	s.cache.Del(context.Background(), spotListCacheKey)
	return nil
}

func (s *SpotService) UnlikeSpot(spotID int, userUID string) error {
	if err := s.repo.RemoveLike(spotID, userUID); err != nil {
		return err
	}
	s.cache.Del(context.Background(), spotListCacheKey)
	return nil
}
