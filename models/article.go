package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	CategoryID  string             `bson:"category_id" json:"category_id"`
	Description string             `bson:"description" json:"description"`
	Post        string             `bson:"post" json:"post"` // nội dung HTML
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Status      string             `bson:"status" json:"status"`
	Slug        string             `bson:"slug" json:"slug"`
	CreateBy    CreateBy           `bson:"createBy" json:"createBy"`
	Deleted     bool               `bson:"deleted" json:"deleted"`
}
