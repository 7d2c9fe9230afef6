package dto

import "time"

// LoginRequest entrada para login: identifier puede ser email o userName.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// UserSummary proyección de usuario que devuelve el login (sin password hash).
type UserSummary struct {
	ID        string    `json:"_id"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse salida del login con el token de sesión firmado.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}

// CreateUserRequest entrada para alta de usuario (password en texto plano,
// se hashea en el use case).
type CreateUserRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse proyección completa de un usuario para listados y /me:
// todos los campos persistidos menos el password hash.
type UserResponse struct {
	ID          string              `json:"_id"`
	UserName    string              `json:"userName"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	LastLoginAt *time.Time          `json:"lastLoginAt"`
	Sale        string              `json:"sale"`
	SaleHistory []SaleEntryResponse `json:"saleHistory"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// ListUsersResponse salida de GET /all.
type ListUsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}

// MeResponse salida de GET /me.
type MeResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
