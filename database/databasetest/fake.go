// Package databasetest cung cấp repository trong bộ nhớ cho test của controller và route.
package databasetest

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/models"
)

// Fake mô phỏng các truy vấn của database.Repository trên slice.
// Err khác nil thì mọi truy vấn trả về lỗi đó.
type Fake struct {
	mu sync.Mutex

	Roles               []models.Role
	Accounts            []models.Account
	Brands              []models.Brand
	ProductCategoryDocs []models.ProductCategory
	Products            []models.Product
	ArticleCategoryDocs []models.ArticleCategory
	Articles            []models.Article
	Users               []models.User
	Carts               []models.Cart
	Orders              []models.Order

	Err error
}

func active(status string, deleted bool) bool {
	return status == models.StatusActive && !deleted
}

func page[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	items = items[skip:]
	if limit > 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

func find[T any](items []T, match func(*T) bool) (*T, error) {
	for i := range items {
		if match(&items[i]) {
			out := items[i]
			return &out, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *Fake) Ping(context.Context) error {
	return f.Err
}

func (f *Fake) FeaturedProducts(_ context.Context, limit int64) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []models.Product
	for _, p := range f.Products {
		if active(p.Status, p.Deleted) && p.Featured == models.FeaturedYes {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Product) int { return cmp.Compare(b.Position, a.Position) })
	return page(out, 0, limit), nil
}

func (f *Fake) NewestProducts(_ context.Context, limit int64) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []models.Product
	for _, p := range f.Products {
		if active(p.Status, p.Deleted) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Product) int { return bytes.Compare(b.ID[:], a.ID[:]) })
	return page(out, 0, limit), nil
}

func (f *Fake) ListProducts(_ context.Context, q database.ProductQuery) ([]models.Product, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, 0, f.Err
	}
	keyword := strings.ToLower(q.Keyword)
	var out []models.Product
	for _, p := range f.Products {
		switch {
		case p.Deleted,
			q.Status != "" && p.Status != q.Status,
			q.CategoryID != "" && p.CategoryID != q.CategoryID,
			keyword != "" && !strings.Contains(strings.ToLower(p.Title), keyword):
			continue
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b models.Product) int {
		if c := cmp.Compare(b.Position, a.Position); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return page(out, q.Skip, q.Limit), int64(len(out)), nil
}

func (f *Fake) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Products, func(p *models.Product) bool { return active(p.Status, p.Deleted) && p.Slug == slug })
}

func (f *Fake) ProductCategories(context.Context) ([]models.ProductCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []models.ProductCategory{}
	for _, c := range f.ProductCategoryDocs {
		if active(c.Status, c.Deleted) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b models.ProductCategory) int { return cmp.Compare(a.Position, b.Position) })
	return out, nil
}

func (f *Fake) ProductCategoryBySlug(_ context.Context, slug string) (*models.ProductCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.ProductCategoryDocs, func(c *models.ProductCategory) bool { return active(c.Status, c.Deleted) && c.Slug == slug })
}

func (f *Fake) ProductCategoryByID(_ context.Context, id string) (*models.ProductCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.ProductCategoryDocs, func(c *models.ProductCategory) bool { return !c.Deleted && c.ID.Hex() == id })
}

func (f *Fake) BrandByID(_ context.Context, id string) (*models.Brand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Brands, func(b *models.Brand) bool { return !b.Deleted && b.ID.Hex() == id })
}

func (f *Fake) ListArticles(_ context.Context, q database.ArticleQuery) ([]models.Article, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, 0, f.Err
	}
	var out []models.Article
	for _, a := range f.Articles {
		if active(a.Status, a.Deleted) && (q.CategoryID == "" || a.CategoryID == q.CategoryID) {
			out = append(out, a)
		}
	}
	return page(out, q.Skip, q.Limit), int64(len(out)), nil
}

func (f *Fake) ArticleBySlug(_ context.Context, slug string) (*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Articles, func(a *models.Article) bool { return active(a.Status, a.Deleted) && a.Slug == slug })
}

func (f *Fake) ArticleCategories(context.Context) ([]models.ArticleCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []models.ArticleCategory{}
	for _, c := range f.ArticleCategoryDocs {
		if active(c.Status, c.Deleted) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *Fake) AccountByEmail(_ context.Context, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Accounts, func(a *models.Account) bool { return !a.Deleted && a.Email == email })
}

func (f *Fake) AccountByID(_ context.Context, id string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Accounts, func(a *models.Account) bool { return !a.Deleted && a.ID.Hex() == id })
}

func (f *Fake) RoleByID(_ context.Context, id string) (*models.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return find(f.Roles, func(r *models.Role) bool { return !r.Deleted && r.ID.Hex() == id })
}

func countLive[T any](items []T, deleted func(*T) bool) int64 {
	var n int64
	for i := range items {
		if !deleted(&items[i]) {
			n++
		}
	}
	return n
}

func (f *Fake) Counts(context.Context) (map[string]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return map[string]int64{
		database.CollectionRoles:             countLive(f.Roles, func(v *models.Role) bool { return v.Deleted }),
		database.CollectionAccounts:          countLive(f.Accounts, func(v *models.Account) bool { return v.Deleted }),
		database.CollectionBrands:            countLive(f.Brands, func(v *models.Brand) bool { return v.Deleted }),
		database.CollectionProductCategories: countLive(f.ProductCategoryDocs, func(v *models.ProductCategory) bool { return v.Deleted }),
		database.CollectionProducts:          countLive(f.Products, func(v *models.Product) bool { return v.Deleted }),
		database.CollectionArticleCategories: countLive(f.ArticleCategoryDocs, func(v *models.ArticleCategory) bool { return v.Deleted }),
		database.CollectionArticles:          countLive(f.Articles, func(v *models.Article) bool { return v.Deleted }),
		database.CollectionUsers:             countLive(f.Users, func(v *models.User) bool { return v.Deleted }),
		database.CollectionCarts:             countLive(f.Carts, func(v *models.Cart) bool { return v.Deleted }),
		database.CollectionOrders:            countLive(f.Orders, func(v *models.Order) bool { return v.Deleted }),
	}, nil
}

func (f *Fake) liveProduct(id string) (*models.Product, error) {
	for i := range f.Products {
		if !f.Products[i].Deleted && f.Products[i].ID.Hex() == id {
			return &f.Products[i], nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *Fake) UpdateProductStatus(_ context.Context, id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	p, err := f.liveProduct(id)
	if err != nil {
		return err
	}
	p.Status = status
	return nil
}

func (f *Fake) SoftDeleteProduct(_ context.Context, id, accountID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	p, err := f.liveProduct(id)
	if err != nil {
		return err
	}
	p.Deleted = true
	p.DeletedBy = &models.DeletedBy{AccountID: accountID, DeletedAt: at}
	return nil
}

// Product trả về bản sao sản phẩm theo id, kể cả đã xoá
func (f *Fake) Product(id string) (models.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.Products {
		if p.ID.Hex() == id {
			return p, true
		}
	}
	return models.Product{}, false
}

func live[T any](f *Fake, items []T, deleted func(*T) bool) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	out := []T{}
	for i := range items {
		if !deleted(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

func (f *Fake) ListOrders(context.Context) ([]models.Order, error) {
	return live(f, f.Orders, func(v *models.Order) bool { return v.Deleted })
}

func (f *Fake) ListRoles(context.Context) ([]models.Role, error) {
	return live(f, f.Roles, func(v *models.Role) bool { return v.Deleted })
}

func (f *Fake) ListAccounts(context.Context) ([]models.Account, error) {
	return live(f, f.Accounts, func(v *models.Account) bool { return v.Deleted })
}

func (f *Fake) ListBrands(context.Context) ([]models.Brand, error) {
	return live(f, f.Brands, func(v *models.Brand) bool { return v.Deleted })
}

func (f *Fake) ListUsers(context.Context) ([]models.User, error) {
	return live(f, f.Users, func(v *models.User) bool { return v.Deleted })
}

func (f *Fake) ListProductCategoriesAdmin(context.Context) ([]models.ProductCategory, error) {
	return live(f, f.ProductCategoryDocs, func(v *models.ProductCategory) bool { return v.Deleted })
}

func (f *Fake) ListArticleCategoriesAdmin(context.Context) ([]models.ArticleCategory, error) {
	return live(f, f.ArticleCategoryDocs, func(v *models.ArticleCategory) bool { return v.Deleted })
}

func (f *Fake) ListArticlesAdmin(context.Context) ([]models.Article, error) {
	return live(f, f.Articles, func(v *models.Article) bool { return v.Deleted })
}

func mustID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}
