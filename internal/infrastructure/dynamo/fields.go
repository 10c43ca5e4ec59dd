package dynamo

// DynamoDB attribute names used in key conditions and update expressions.
const (
	fieldUpdatedAt       = "updated_at"
	fieldStatus          = "status"
	fieldEmail           = "email"
	fieldNickname        = "nickname"
	fieldTeamID          = "team_id"
	fieldSystemID        = "system_id"
	fieldSystemQualityID = "system_quality_id"
	fieldAuthorityName   = "authority_name"
)

// Secondary index names.
const (
	indexEmail         = "email-index"
	indexNickname      = "nickname-index"
	indexTeamID        = "team_id-index"
	indexSystemID      = "system_id-index"
	indexSystemQuality = "system_quality_id-index"
)
