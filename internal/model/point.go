package model

type ChangePointsRequest struct {
	CommunityHandle string `json:"community_handle"`
	Points          int64  `json:"points"`
	DurationDays    int    `json:"duration_days"`
	Motive          string `json:"motive"`
}

type ChangePointsResponse struct{}
