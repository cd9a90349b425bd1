package dto

import "braik-ai-be/internal/entity"

type SaveEntryRequest struct {
	Id          string            `json:"id"`
	Type        string            `json:"type" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Content     string            `json:"content" validate:"required"`
	Date        string            `json:"date"`
	IsSensitive bool              `json:"isSensitive"`
	Metadata    map[string]string `json:"metadata"`
}

type ScanDocumentRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

type EntryListResponse struct {
	Entries []entity.BusinessEntry `json:"entries"`
}
