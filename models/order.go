package models

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserInfo là thông tin liên hệ của khách tại thời điểm đặt hàng
type UserInfo struct {
	FullName string `bson:"fullName" json:"fullName"`
	Phone    string `bson:"phone" json:"phone"`
	Address  string `bson:"address" json:"address"`
}

// OrderItem sao chép giá và giảm giá của sản phẩm lúc đặt hàng
type OrderItem struct {
	ProductID          string `bson:"product_id" json:"product_id"`
	Quantity           int    `bson:"quantity" json:"quantity"`
	Price              int64  `bson:"price" json:"price"`
	DiscountPercentage int    `bson:"discountPercentage" json:"discountPercentage"`
}

func (i OrderItem) PriceNew() int64 {
	return DiscountedPrice(i.Price, i.DiscountPercentage)
}

func (i OrderItem) Total() int64 {
	return decimal.NewFromInt(i.PriceNew()).Mul(decimal.NewFromInt(int64(i.Quantity))).IntPart()
}

type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   string             `bson:"user_id" json:"user_id"`
	CartID   string             `bson:"cart_id" json:"cart_id"`
	UserInfo UserInfo           `bson:"userInfor" json:"userInfor"`
	Products []OrderItem        `bson:"products" json:"products"`
	Deleted  bool               `bson:"deleted" json:"deleted"`
}

// Total là tổng tiền đơn hàng sau giảm giá
func (o *Order) Total() int64 {
	sum := decimal.Zero
	for _, item := range o.Products {
		sum = sum.Add(decimal.NewFromInt(item.Total()))
	}
	return sum.IntPart()
}
