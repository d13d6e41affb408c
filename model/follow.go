package model

import "time"

type Follow struct {
	FollowerUID  string    `json:"follower_uid"`
	FollowingUID string    `json:"following_uid"`
	CreatedAt    time.Time `json:"created_at"`
}
