package dto

// MessageDTO 错误与提示信息
type MessageDTO struct {
	Message string `json:"message"`
}

// HealthDTO 健康检查
type HealthDTO struct {
	OK bool `json:"ok"`
}
