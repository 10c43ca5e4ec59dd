package domain

import "time"

type Memo struct {
	MemoID          string    `json:"id" dynamodbav:"memo_id"`
	SystemQualityID string    `json:"systemQualityId" dynamodbav:"system_quality_id"`
	WriterID        string    `json:"writerId" dynamodbav:"writer_id"`
	Content         string    `json:"content" dynamodbav:"content"`
	CreatedAt       time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateMemoInput struct {
	SystemQualityID string `json:"systemQualityId" validate:"notblank" message:"please select a system quality record"`
	Content         string `json:"content" validate:"notblank" message:"memo content must not be blank"`
}

type UpdateMemoInput struct {
	Content string `json:"content" validate:"notblank" message:"memo content must not be blank"`
}
