package dto

// PostDTO 帖子 - 基础字段，与存储文档的字段名保持一致
type PostDTO struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"userId"`
	Caption    *string    `json:"caption,omitempty"`
	ImageURLs  []string   `json:"imageUrls"`
	CreatedAt  string     `json:"createdAt"`
	LocationID *int64     `json:"locationId,omitempty"`
	LikesCount int64      `json:"likesCount"`
	Liked      bool       `json:"liked"`
	AllTags    [][]string `json:"allTags,omitempty"`
}

// PostFeedDTO 帖子 - 信息流条目，作者与地点展开后随帖返回
type PostFeedDTO struct {
	PostDTO
	User     *FeedUserDTO `json:"user"`
	Location *LocationDTO `json:"location"`
}

// FeedPageDTO 信息流单页
type FeedPageDTO struct {
	Data    []PostFeedDTO `json:"data"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Total   int           `json:"total"`
	HasMore bool          `json:"hasMore"`
}

// LikeStateDTO 点赞状态，like/unlike 的统一返回形状
type LikeStateDTO struct {
	PostID     int64 `json:"postId"`
	LikesCount int64 `json:"likesCount"`
	Liked      bool  `json:"liked"`
}
