package model

import "time"

// Post 帖子实体。Liked / LikesCount 只能通过点赞服务一起变更
type Post struct {
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

// createdAt 允许完整时间戳或纯日期两种写法
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CreatedTime 解析 CreatedAt，解析失败返回零值时间
func (p *Post) CreatedTime() time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, p.CreatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}
