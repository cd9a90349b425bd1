package dto

import "braik-ai-be/internal/entity"

type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token   string             `json:"token"`
	Profile entity.UserProfile `json:"profile"`
	Trial   entity.TrialStatus `json:"trial"`
}

type ProfileResponse struct {
	Profile entity.UserProfile `json:"profile"`
	Trial   entity.TrialStatus `json:"trial"`
}
