package domain

import "time"

// SystemQuality is one weekly quality measurement of a system.
type SystemQuality struct {
	SystemQualityID string    `json:"id" dynamodbav:"system_quality_id"`
	SystemID        string    `json:"systemId" dynamodbav:"system_id"`
	Week            string    `json:"week" dynamodbav:"week"` // ISO week, e.g. 2026-W41
	TotalTestCases  int       `json:"totalTestCases" dynamodbav:"total_test_cases"`
	PassedTestCases int       `json:"passedTestCases" dynamodbav:"passed_test_cases"`
	Defects         int       `json:"defects" dynamodbav:"defects"`
	Coverage        float64   `json:"coverage" dynamodbav:"coverage"`
	ReporterEmail   string    `json:"reporterEmail" dynamodbav:"reporter_email"`
	CreatedAt       time.Time `json:"createdAt" dynamodbav:"created_at"`
}
