package dto

// LoginRequest 登录请求，邮箱作为登录名
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1,max=150"`
}

// TokenData 登录成功返回的令牌数据
type TokenData struct {
	Token     string   `json:"auth_token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}
