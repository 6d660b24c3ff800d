package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User là khách hàng phía client
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"fullName" json:"fullName"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Phone    string             `bson:"phone" json:"phone"`
	Avatar   string             `bson:"avatar" json:"avatar"`
	Status   string             `bson:"status" json:"status"`
	Deleted  bool               `bson:"deleted" json:"deleted"`
}
