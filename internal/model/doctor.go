package model

// Doctor represents a registered doctor account.
type Doctor struct {
	Base
	Email        string `json:"email" db:"email"`
	LicenceNum   string `json:"licence_num" db:"licence_num"`
	Phone        string `json:"phone" db:"phone"`
	FirstName    string `json:"first_name" db:"first_name"`
	LastName     string `json:"last_name" db:"last_name"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// RegisterRequest represents doctor registration parameters
type RegisterRequest struct {
	Email      string `json:"email" binding:"required,email"`
	LicenceNum string `json:"licence_num" binding:"required,max=50"`
	Phone      string `json:"phone" binding:"required,min=9,max=11"`
	Name       Name   `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// FindEmailRequest recovers a doctor's login email from name and phone.
type FindEmailRequest struct {
	Phone string `json:"phone" binding:"required,min=9,max=11"`
	Name  Name   `json:"name" binding:"required"`
}
