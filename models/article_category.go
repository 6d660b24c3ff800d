package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ArticleCategory có cùng cấu trúc với ProductCategory
type ArticleCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	Position    int                `bson:"position" json:"position"`
	ParentID    string             `bson:"parent_id" json:"parent_id"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Slug        string             `bson:"slug" json:"slug"`
	Deleted     bool               `bson:"deleted" json:"deleted"`
}
