package dto

import "braik-ai-be/internal/entity"

type WhatsAppPairResponse struct {
	PairingToken string                  `json:"pairingToken"`
	Settings     entity.WhatsAppSettings `json:"settings"`
}

type WhatsAppSettingsRequest struct {
	IsEnabled     bool   `json:"isEnabled"`
	AutoReplyMode string `json:"autoReplyMode" validate:"omitempty,oneof=contacts_only all"`
}

type SimulateMessageRequest struct {
	Sender  string `json:"sender"`
	Message string `json:"message" validate:"required"`
}

type SimulateMessageResponse struct {
	Reply string `json:"reply"`
}

type SocialToggleRequest struct {
	Platform  string `json:"platform" validate:"required,oneof=facebook instagram tiktok"`
	IsEnabled bool   `json:"isEnabled"`
}

type SocialConnectRequest struct {
	Platform string `json:"platform" validate:"required,oneof=facebook instagram tiktok"`
}

type SocialSettingsResponse struct {
	Platforms []entity.SocialPlatformSettings `json:"platforms"`
}
