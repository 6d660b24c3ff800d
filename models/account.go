package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account là tài khoản quản trị (admin panel)
type Account struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"fullName" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Phone    string             `bson:"phone" json:"phone"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	RoleID   string             `bson:"role_id" json:"role_id"`
	Status   string             `bson:"status" json:"status"`
	Deleted  bool               `bson:"deleted" json:"deleted"`
}

func (a *Account) Active() bool {
	return a.Status == StatusActive && !a.Deleted
}
