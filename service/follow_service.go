package service

import (
	"drone-spot-api/model"
	"drone-spot-api/repository"
	"errors"
)

// ErrSelfFollow is returned when a user tries to follow themselves.
var ErrSelfFollow = errors.New("cannot follow yourself")

type FollowService struct {
	repo repository.IFollowRepository
}

func NewFollowService(repo repository.IFollowRepository) *FollowService {
	return &FollowService{repo: repo}
}

func (s *FollowService) Follow(followerUID, followingUID string) error {
	if followerUID == followingUID {
		return ErrSelfFollow
	}
	return s.repo.CreateFollow(followerUID, followingUID)
}

func (s *FollowService) Unfollow(followerUID, followingUID string) error {
	return s.repo.DeleteFollow(followerUID, followingUID)
}

func (s *FollowService) ListFollowers(uid string) ([]*model.Follow, error) {
	return s.repo.GetFollowers(uid)
}

func (s *FollowService) ListFollowing(uid string) ([]*model.Follow, error) {
	return s.repo.GetFollowing(uid)
}
