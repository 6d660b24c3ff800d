package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Cart struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Deleted bool               `bson:"deleted" json:"deleted"`
}
