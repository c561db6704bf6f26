package model

import "time"

type Competition struct {
	ID              string    `json:"id"`
	CommunityHandle string    `json:"community_handle"`
	DurationDays    int       `json:"duration_days"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
	Status          string    `json:"status"`
	WinnerID        string    `json:"winner_id,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
}

type ConfigureCompetitionRequest struct {
	CommunityHandle string `json:"community_handle"`
	DurationDays    int    `json:"duration_days"`
}

type ConfigureCompetitionResponse struct {
	Competition Competition `json:"competition"`
}

type UpdateCompetitionRequest struct {
	CommunityHandle string `json:"community_handle"`
	DurationDays    int    `json:"duration_days"`
}

type UpdateCompetitionResponse struct {
	Competition Competition `json:"competition"`
}
