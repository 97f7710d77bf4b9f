package model

// Location 地点，只读参照数据
type Location struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
