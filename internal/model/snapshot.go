package model

// Snapshot 文档存储的整体快照，三个集合保证非 nil
type Snapshot struct {
	Posts     []Post     `json:"posts"`
	Users     []User     `json:"users"`
	Locations []Location `json:"locations"`
}

// Normalize 缺失集合初始化为空数组
func (s *Snapshot) Normalize() {
	if s.Posts == nil {
		s.Posts = []Post{}
	}
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Locations == nil {
		s.Locations = []Location{}
	}
}

// FindPost 按 ID 查找帖子，返回可修改的指针
func (s *Snapshot) FindPost(id int64) *Post {
	for i := range s.Posts {
		if s.Posts[i].ID == id {
			return &s.Posts[i]
		}
	}
	return nil
}
