package dto

// FeedUserDTO 用户 - 信息流内嵌形态，带派生的发帖数
type FeedUserDTO struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	IsVerified      bool    `json:"isVerified"`
	HasStory        bool    `json:"hasStory"`
	FollowersCount  int64   `json:"followersCount"`
	FollowingsCount int64   `json:"followingsCount"`
	PostsCount      int64   `json:"postsCount"`
}

// LocationDTO 地点
type LocationDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RankedAccountDTO 账号搜索结果，按匹配得分排序后输出
type RankedAccountDTO struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	IsVerified      bool    `json:"isVerified"`
	HasStory        bool    `json:"hasStory"`
	FollowersCount  int64   `json:"followersCount"`
	FollowingsCount int64   `json:"followingsCount"`
	PostsCount      int64   `json:"postsCount"`
}

// SearchAccountsDTO 账号搜索请求
type SearchAccountsDTO struct {
	Q string `form:"q" binding:"omitempty,max=100"`
}
