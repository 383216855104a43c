package user

import "time"

type SignUpInput struct {
	Email    string  `json:"email" binding:"required,email" example:"awa@example.com"`
	Password string  `json:"password" binding:"required,min=8" example:"password123"`
	Name     string  `json:"name" binding:"required,min=2" example:"Awa Diop"`
	Phone    *string `json:"phone" binding:"omitempty,min=9" example:"+221771234567"`
}

type SignInInput struct {
	Email    string `json:"email" binding:"required,email" example:"awa@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name" binding:"omitempty,min=2" example:"Awa Diop"`
	Phone *string `json:"phone" binding:"omitempty,min=9" example:"+221771234567"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required,oneof=customer admin super_admin" example:"admin"`
}

type UserDTO struct {
	ID        uint       `json:"id" example:"1"`
	Email     string     `json:"email" example:"awa@example.com"`
	Name      string     `json:"name" example:"Awa Diop"`
	Phone     *string    `json:"phone,omitempty"`
	Role      Role       `json:"role" example:"customer"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

type SessionDTO struct {
	User      UserDTO   `json:"user"`
	Profile   Profile   `json:"profile"`
	ExpiresAt time.Time `json:"expires_at"`
}
