package model

import "github.com/rutamapas/backend/internal/entity"

func ConvertCompetition(competition *entity.Competition, communityHandle string) Competition {
	if competition == nil {
		return Competition{}
	}

	return Competition{
		ID:              competition.ID,
		CommunityHandle: communityHandle,
		DurationDays:    competition.DurationDays,
		StartedAt:       competition.StartedAt,
		EndedAt:         competition.EndedAt,
		Status:          string(competition.Status),
		WinnerID:        competition.WinnerID.String,
		CreatedBy:       competition.CreatedBy.String,
	}
}

func ConvertRankTier(tier *entity.RankTier) *RankTier {
	if tier == nil {
		return nil
	}

	return &RankTier{
		ID:          tier.ID,
		Name:        tier.Name,
		Description: tier.Description,
		MinPoints:   tier.MinPoints,
		MaxPoints:   tier.MaxPoints,
	}
}
