package model

import "time"

type UserPoints struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
}

type GetRankingRequest struct {
	CommunityHandle string `json:"community_handle" form:"community_handle"`
	DurationDays    int    `json:"duration_days" form:"duration_days"`
	IncludeZeros    bool   `json:"include_zeros" form:"include_zeros"`
	Limit           int    `json:"limit" form:"limit"`
}

type GetRankingResponse struct {
	Ranking []UserPoints `json:"ranking"`
}

type CompetitionSummary struct {
	ID           string    `json:"id"`
	StartedAt    time.Time `json:"started_at"`
	EndedAt      time.Time `json:"ended_at"`
	DurationDays int       `json:"duration_days"`
	WinnerID     string    `json:"winner_id,omitempty"`
	WinnerName   string    `json:"winner_name,omitempty"`
	WinnerPoints int64     `json:"winner_points"`
}

type GetCompetitionHistoryRequest struct {
	CommunityHandle string `json:"community_handle" form:"community_handle"`
	Page            int    `json:"page" form:"page"`
	PerPage         int    `json:"per_page" form:"per_page"`
}

type GetCompetitionHistoryResponse struct {
	Competitions []CompetitionSummary `json:"competitions"`
	Total        int64                `json:"total"`
}
