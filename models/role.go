package models

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PermissionView    = "view"
	PermissionCreate  = "create"
	PermissionEdit    = "edit"
	PermissionDelete  = "delete"
	PermissionPublish = "publish"
)

type Role struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Permissions []string           `bson:"permissions" json:"permissions"`
	Deleted     bool               `bson:"deleted" json:"deleted"`
}

// Can trả về true nếu nhóm quyền có permission tương ứng
func (r *Role) Can(permission string) bool {
	if r == nil {
		return false
	}
	return slices.Contains(r.Permissions, permission)
}
