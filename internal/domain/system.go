package domain

import "time"

type System struct {
	SystemID  string    `json:"id" dynamodbav:"system_id"`
	TeamID    string    `json:"teamId" dynamodbav:"team_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	CreatedAt time.Time `json:"createdAt" dynamodbav:"created_at"`
}
