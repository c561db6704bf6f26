package statistic

import "fmt"

func redisKeyRanking(competitionID string, includeZeros bool, limit int) string {
	mode := "scored"
	if includeZeros {
		mode = "zeros"
	}

	return fmt.Sprintf("ranking:%s:%s:%d", competitionID, mode, limit)
}

// redisKeyRankingPattern matches every cached snapshot of one competition,
// regardless of mode and limit. Used for invalidation after a score change.
func redisKeyRankingPattern(competitionID string) string {
	return fmt.Sprintf("ranking:%s:*", competitionID)
}
