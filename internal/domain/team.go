package domain

import "time"

type Team struct {
	TeamID    string    `json:"id" dynamodbav:"team_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
}

// TeamDetail is a team together with the systems it owns.
type TeamDetail struct {
	Team
	Systems []System `json:"systems"`
}
