package model

// User 用户实体，种子数据写入后只读
type User struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	IsVerified      bool    `json:"isVerified,omitempty"`
	HasStory        bool    `json:"hasStory,omitempty"`
	FollowersCount  int64   `json:"followersCount,omitempty"`
	FollowingsCount int64   `json:"followingsCount,omitempty"`
}
