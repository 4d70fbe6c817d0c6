package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=60"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin operator"`
}

type UpdateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin operator"`
}
