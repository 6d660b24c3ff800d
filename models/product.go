package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title              string             `bson:"title" json:"title"`
	CategoryID         string             `bson:"category_id" json:"category_id"`
	Description        string             `bson:"description" json:"description"`
	BrandID            string             `bson:"brand_id" json:"brand_id"`
	Type               string             `bson:"type" json:"type"`
	Color              string             `bson:"color" json:"color"`
	Price              int64              `bson:"price" json:"price"` // VND
	Size               []int              `bson:"size" json:"size"`
	DiscountPercentage int                `bson:"discountPercentage" json:"discountPercentage"`
	Stock              int                `bson:"stock" json:"stock"`
	Thumbnail          string             `bson:"thumbnail" json:"thumbnail"`
	Status             string             `bson:"status" json:"status"`
	Featured           string             `bson:"featured" json:"featured"`
	Position           int                `bson:"position" json:"position"`
	Slug               string             `bson:"slug" json:"slug"`
	CreateBy           CreateBy           `bson:"createBy" json:"createBy"`
	Deleted            bool               `bson:"deleted" json:"deleted"`
	DeletedBy          *DeletedBy         `bson:"deletedBy,omitempty" json:"deletedBy,omitempty"`
}

// PriceNew là giá sau khi áp dụng giảm giá, làm tròn tới đơn vị
func (p *Product) PriceNew() int64 {
	return DiscountedPrice(p.Price, p.DiscountPercentage)
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountedPrice tính price * (100 - discount) / 100.
// discount ngoài khoảng [0,100] được kẹp về biên.
func DiscountedPrice(price int64, discount int) int64 {
	discount = max(0, min(discount, 100))
	return decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(int64(100 - discount))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
