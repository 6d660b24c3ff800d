package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Brand struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Status      string             `bson:"status" json:"status"`
	Slug        string             `bson:"slug" json:"slug"`
	CreateBy    CreateBy           `bson:"createBy" json:"createBy"`
	Deleted     bool               `bson:"deleted" json:"deleted"`
}
