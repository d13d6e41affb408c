package repository

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"
)

// IFollowRepository defines the contract for the follow graph.
type IFollowRepository interface {
	CreateFollow(followerUID, followingUID string) error
	DeleteFollow(followerUID, followingUID string) error
	IsFollowing(followerUID, followingUID string) (bool, error)
	GetFollowers(uid string) ([]*model.Follow, error)
	GetFollowing(uid string) ([]*model.Follow, error)
	CountFollowers(uid string) (int, error)
	CountFollowing(uid string) (int, error)
}

type FollowRepository struct {
	DB *sql.DB
}

func NewFollowRepository(db *sql.DB) *FollowRepository {
	return &FollowRepository{DB: db}
}

func (r *FollowRepository) CreateFollow(followerUID, followingUID string) error {
	query := `INSERT INTO follows (follower_uid, following_uid) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.DB.Exec(query, followerUID, followingUID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create follow query")
	}
	return err
}

func (r *FollowRepository) DeleteFollow(followerUID, followingUID string) error {
	query := `DELETE FROM follows WHERE follower_uid = $1 AND following_uid = $2`
	_, err := r.DB.Exec(query, followerUID, followingUID)
	return err
}

func (r *FollowRepository) IsFollowing(followerUID, followingUID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM follows WHERE follower_uid = $1 AND following_uid = $2`
	if err := r.DB.QueryRow(query, followerUID, followingUID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FollowRepository) GetFollowers(uid string) ([]*model.Follow, error) {
	return r.queryFollows(`SELECT follower_uid, following_uid, created_at FROM follows WHERE following_uid = $1`, uid)
}

func (r *FollowRepository) GetFollowing(uid string) ([]*model.Follow, error) {
	return r.queryFollows(`SELECT follower_uid, following_uid, created_at FROM follows WHERE follower_uid = $1`, uid)
}

func (r *FollowRepository) queryFollows(query, uid string) ([]*model.Follow, error) {
	rows, err := r.DB.Query(query, uid)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute follow query")
		return nil, err
	}
	defer rows.Close()

	var follows []*model.Follow
	for rows.Next() {
		var f model.Follow
		if err := rows.Scan(&f.FollowerUID, &f.FollowingUID, &f.CreatedAt); err != nil {
			return nil, err
		}
		follows = append(follows, &f)
	}
	return follows, rows.Err()
}

func (r *FollowRepository) CountFollowers(uid string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM follows WHERE following_uid = $1`, uid).Scan(&count)
	return count, err
}

func (r *FollowRepository) CountFollowing(uid string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM follows WHERE follower_uid = $1`, uid).Scan(&count)
	return count, err
}
