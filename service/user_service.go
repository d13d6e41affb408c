package service

import (
	"database/sql"
	"drone-spot-api/model"
	"drone-spot-api/repository"
	"errors"

	"github.com/google/uuid"
)

// ErrLoginIDTaken is returned by Register when the login id already exists.
var ErrLoginIDTaken = errors.New("login id already taken")

// ErrNotAccountOwner is returned when a non-admin tries to delete someone
// else's account.
var ErrNotAccountOwner = errors.New("account belongs to another user")

// UserService handles registration and profile reads.
type UserService struct {
	userRepo   repository.IUserRepository
	followRepo repository.IFollowRepository
	reviewRepo repository.IReviewRepository
	auth       *AuthService
}

func NewUserService(
	userRepo repository.IUserRepository,
	followRepo repository.IFollowRepository,
	reviewRepo repository.IReviewRepository,
	auth *AuthService,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		reviewRepo: reviewRepo,
		auth:       auth,
	}
}

// Register creates a new user with a fresh UID and a salted bcrypt digest.
func (s *UserService) Register(req *model.RegisterRequest) (*model.User, error) {
	if _, err := s.userRepo.GetUserByLoginID(req.LoginID); err == nil {
		return nil, ErrLoginIDTaken
	} else if err != sql.ErrNoRows {
		return nil, err
	}

	hashed, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UID:      uuid.NewString(),
		Name:     req.Name,
		LoginID:  req.LoginID,
		Email:    req.Email,
		Password: hashed,
		Level:    model.LevelUser,
		Age:      req.Age,
		Drone:    req.Drone,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Only the account owner or an admin may
// delete it; the user's sessions are removed with the account row.
func (s *UserService) DeleteUser(uid, callerUID string, callerLevel int) error {
	if uid != callerUID && callerLevel < model.LevelAdmin {
		return ErrNotAccountOwner
	}
	return s.userRepo.DeleteUser(uid)
}

// GetProfile builds the public profile card for a user. viewerUID is empty
// for anonymous callers; IsFollowing is only populated when a logged-in
// user views someone else's profile.
func (s *UserService) GetProfile(uid, viewerUID string) (*model.Profile, error) {
	user, err := s.userRepo.GetUserByUID(uid)
	if err != nil {
		return nil, err
	}

	postCount, err := s.reviewRepo.CountByWriter(uid)
	if err != nil {
		return nil, err
	}
	followerCount, err := s.followRepo.CountFollowers(uid)
	if err != nil {
		return nil, err
	}
	followingCount, err := s.followRepo.CountFollowing(uid)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		UID:            user.UID,
		Name:           user.Name,
		Image:          user.Image,
		OneLiner:       user.OneLiner,
		Drone:          user.Drone,
		PostCount:      postCount,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}

	if viewerUID != "" && viewerUID != uid {
		following, err := s.followRepo.IsFollowing(viewerUID, uid)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = &following
	}

	return profile, nil
}
