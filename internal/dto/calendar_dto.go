package dto

import "braik-ai-be/internal/entity"

type CreateEventRequest struct {
	Id          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
}

type CalendarResponse struct {
	Events []entity.CalendarEvent `json:"events"`
}

type CreateReminderRequest struct {
	Text         string `json:"text" validate:"required"`
	DueTimestamp int64  `json:"dueTimestamp"`
}

type ReminderListResponse struct {
	Reminders []entity.Reminder `json:"reminders"`
}
