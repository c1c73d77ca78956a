package dto

// PasswordResponse 管理员密码响应
type PasswordResponse struct {
	Password string `json:"password"`
}

// UpdatePasswordRequest 更新管理员密码请求
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required"`
}
