package models

import "time"

// Trạng thái dùng chung cho các collection
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	FeaturedYes = "yes"
	FeaturedNo  = "no"
)

// CreateBy lưu tài khoản đã tạo bản ghi và thời điểm tạo
type CreateBy struct {
	AccountID string    `bson:"accountId" json:"accountId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// DeletedBy lưu tài khoản đã xoá mềm bản ghi
type DeletedBy struct {
	AccountID string    `bson:"accountId" json:"accountId"`
	DeletedAt time.Time `bson:"deletedAt" json:"deletedAt"`
}

// ValidStatus kiểm tra giá trị status có hợp lệ không
func ValidStatus(status string) bool {
	return status == StatusActive || status == StatusInactive
}
