package databasetest

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/seed"
	"github.com/vnkhanh/product-management/seed/seedtest"
	"github.com/vnkhanh/product-management/utils"
)

// Seeded chạy bộ dữ liệu mẫu vào store bộ nhớ rồi nạp kết quả vào Fake,
// id của document giữ nguyên như khi seed.
func Seeded(ctx context.Context) (*Fake, error) {
	store := seedtest.NewMemoryStore()
	runner := &seed.Runner{
		Store: store,
		HashPassword: func(plain string) (string, error) {
			return utils.HashPassword(plain, bcrypt.MinCost)
		},
	}
	if _, err := runner.Run(ctx); err != nil {
		return nil, fmt.Errorf("seed fake: %w", err)
	}

	return &Fake{
		Roles:               load(store, database.CollectionRoles, func(v *models.Role, id primitive.ObjectID) { v.ID = id }),
		Accounts:            load(store, database.CollectionAccounts, func(v *models.Account, id primitive.ObjectID) { v.ID = id }),
		Brands:              load(store, database.CollectionBrands, func(v *models.Brand, id primitive.ObjectID) { v.ID = id }),
		ProductCategoryDocs: load(store, database.CollectionProductCategories, func(v *models.ProductCategory, id primitive.ObjectID) { v.ID = id }),
		Products:            load(store, database.CollectionProducts, func(v *models.Product, id primitive.ObjectID) { v.ID = id }),
		ArticleCategoryDocs: load(store, database.CollectionArticleCategories, func(v *models.ArticleCategory, id primitive.ObjectID) { v.ID = id }),
		Articles:            load(store, database.CollectionArticles, func(v *models.Article, id primitive.ObjectID) { v.ID = id }),
		Users:               load(store, database.CollectionUsers, func(v *models.User, id primitive.ObjectID) { v.ID = id }),
		Carts:               load(store, database.CollectionCarts, func(v *models.Cart, id primitive.ObjectID) { v.ID = id }),
		Orders:              load(store, database.CollectionOrders, func(v *models.Order, id primitive.ObjectID) { v.ID = id }),
	}, nil
}

// load gắn lại id mà store đã sinh vào document
func load[T any](store *seedtest.MemoryStore, collection string, setID func(*T, primitive.ObjectID)) []T {
	var out []T
	for _, d := range store.Docs(collection) {
		v := d.Value.(T)
		setID(&v, mustID(d.ID))
		out = append(out, v)
	}
	return out
}
