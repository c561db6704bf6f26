package entity

// RankTier is a named bracket of global points. A user belongs to the tier
// whose [MinPoints, MaxPoints] range contains their current global score.
type RankTier struct {
	Base
	Name        string
	Description string
	MinPoints   int64
	MaxPoints   int64
}
