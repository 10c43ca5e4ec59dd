package domain

const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

type Authority struct {
	Name string `json:"authorityName" dynamodbav:"authority_name"`
}
