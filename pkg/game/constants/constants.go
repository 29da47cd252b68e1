package constants

import "time"

const (
	// MemorizeTick is the period of the memorize countdown
	MemorizeTick = time.Second
	// OpponentBonus is added to a correct answer on a tile owned by another player
	OpponentBonus = 1
	// DefaultTierPoints is awarded for a tier outside TierPoints
	DefaultTierPoints = 1
)

// TierPoints is the reward for a correct answer by question tier.
// Tier 1 is the hardest.
var TierPoints = map[int]int{
	1: 3,
	2: 2,
	3: 1,
}

// PointsFor returns the base reward for a correct answer at tier.
func PointsFor(tier int) int {
	if points, ok := TierPoints[tier]; ok {
		return points
	}
	return DefaultTierPoints
}
