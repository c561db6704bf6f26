package model

// AccessToken is the payload of the opaque identity token. Issuing it is an
// identity-provider concern outside this service.
type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RankTier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinPoints   int64  `json:"min_points"`
	MaxPoints   int64  `json:"max_points"`
}

type ChangeGlobalPointsRequest struct {
	Points int64  `json:"points"`
	Motive string `json:"motive"`
}

type ChangeGlobalPointsResponse struct {
	PreviousPoints int64     `json:"previous_points"`
	Change         int64     `json:"change"`
	CurrentPoints  int64     `json:"current_points"`
	RankTier       *RankTier `json:"rank_tier,omitempty"`
}

const (
	StreakActionIncrease = "increase"
	StreakActionReset    = "reset"
	StreakActionSet      = "set"
)

type ChangeStreakRequest struct {
	Streak int64  `json:"streak"`
	Action string `json:"action"`
}

type ChangeStreakResponse struct {
	PreviousStreak int64  `json:"previous_streak"`
	CurrentStreak  int64  `json:"current_streak"`
	Action         string `json:"action"`
}

type GetUserStatisticsRequest struct{}

type GetUserStatisticsResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Points       int64     `json:"points"`
	Streak       int64     `json:"streak"`
	RankTier     *RankTier `json:"rank_tier,omitempty"`
	NextRankTier *RankTier `json:"next_rank_tier,omitempty"`
}
