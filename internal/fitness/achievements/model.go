package achievements

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

type Achievement struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Rarity      Rarity    `json:"rarity"`
	AwardedAt   time.Time `json:"awardedAt"`
}

// milestone is a workout-count threshold that awards an achievement.
type milestone struct {
	sessions    int
	title       string
	description string
	points      int
	rarity      Rarity
}

// workoutMilestones are checked in ascending order after every new
// session. Each is awarded at most once per user.
var workoutMilestones = []milestone{
	{sessions: 1, title: "First Workout", description: "Completed your first workout session", points: 10, rarity: RarityCommon},
	{sessions: 10, title: "Dedicated", description: "Completed 10 workout sessions", points: 25, rarity: RarityUncommon},
	{sessions: 50, title: "Committed", description: "Completed 50 workout sessions", points: 100, rarity: RarityRare},
	{sessions: 100, title: "Century Club", description: "Completed 100 workout sessions", points: 250, rarity: RarityLegendary},
}
