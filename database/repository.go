package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/vnkhanh/product-management/models"
)

var ErrNotFound = errors.New("không tìm thấy dữ liệu")

// Repository gom các truy vấn mà controller client và admin sử dụng
type Repository struct {
	db *mongo.Database
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

// ProductQuery lọc danh sách sản phẩm; Status rỗng ở admin nghĩa là mọi trạng thái
type ProductQuery struct {
	CategoryID string
	Keyword    string
	Status     string
	Skip       int64
	Limit      int64
}

func (q ProductQuery) filter() bson.M {
	filter := bson.M{"deleted": false}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.CategoryID != "" {
		filter["category_id"] = q.CategoryID
	}
	if q.Keyword != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Keyword), Options: "i"}
	}
	return filter
}

type ArticleQuery struct {
	CategoryID string
	Skip       int64
	Limit      int64
}

func activeFilter() bson.M {
	return bson.M{"status": models.StatusActive, "deleted": false}
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("truy vấn %s: %w", coll.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("đọc %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (*T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("truy vấn %s: %w", coll.Name(), err)
	}
	return &out, nil
}

func byID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return bson.M{"_id": oid, "deleted": false}, nil
}

// ===== Client =====

func (r *Repository) FeaturedProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	filter := activeFilter()
	filter["featured"] = models.FeaturedYes
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: -1}}).SetLimit(limit)
	return findAll[models.Product](ctx, r.db.Collection(CollectionProducts), filter, opts)
}

func (r *Repository) NewestProducts(ctx context.Context, limit int64) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}).SetLimit(limit)
	return findAll[models.Product](ctx, r.db.Collection(CollectionProducts), activeFilter(), opts)
}

// ListProducts trả về một trang sản phẩm và tổng số bản ghi khớp bộ lọc
func (r *Repository) ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, int64, error) {
	coll := r.db.Collection(CollectionProducts)
	filter := q.filter()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("đếm sản phẩm: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "position", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(q.Skip)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	products, err := findAll[models.Product](ctx, coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *Repository) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	filter := activeFilter()
	filter["slug"] = slug
	return findOne[models.Product](ctx, r.db.Collection(CollectionProducts), filter)
}

func (r *Repository) ProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	return findAll[models.ProductCategory](ctx, r.db.Collection(CollectionProductCategories), activeFilter(), opts)
}

func (r *Repository) ProductCategoryBySlug(ctx context.Context, slug string) (*models.ProductCategory, error) {
	filter := activeFilter()
	filter["slug"] = slug
	return findOne[models.ProductCategory](ctx, r.db.Collection(CollectionProductCategories), filter)
}

func (r *Repository) ProductCategoryByID(ctx context.Context, id string) (*models.ProductCategory, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.ProductCategory](ctx, r.db.Collection(CollectionProductCategories), filter)
}

func (r *Repository) BrandByID(ctx context.Context, id string) (*models.Brand, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Brand](ctx, r.db.Collection(CollectionBrands), filter)
}

func (r *Repository) ListArticles(ctx context.Context, q ArticleQuery) ([]models.Article, int64, error) {
	coll := r.db.Collection(CollectionArticles)
	filter := activeFilter()
	if q.CategoryID != "" {
		filter["category_id"] = q.CategoryID
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("đếm bài viết: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createBy.createdAt", Value: -1}}).SetSkip(q.Skip)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	articles, err := findAll[models.Article](ctx, coll, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	filter := activeFilter()
	filter["slug"] = slug
	return findOne[models.Article](ctx, r.db.Collection(CollectionArticles), filter)
}

func (r *Repository) ArticleCategories(ctx context.Context) ([]models.ArticleCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	return findAll[models.ArticleCategory](ctx, r.db.Collection(CollectionArticleCategories), activeFilter(), opts)
}

// ===== Admin =====

func (r *Repository) AccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return findOne[models.Account](ctx, r.db.Collection(CollectionAccounts), bson.M{"email": email, "deleted": false})
}

func (r *Repository) AccountByID(ctx context.Context, id string) (*models.Account, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Account](ctx, r.db.Collection(CollectionAccounts), filter)
}

func (r *Repository) RoleByID(ctx context.Context, id string) (*models.Role, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return findOne[models.Role](ctx, r.db.Collection(CollectionRoles), filter)
}

// Counts đếm số document chưa bị xoá của từng collection
func (r *Repository) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Collections))
	for _, name := range Collections {
		n, err := r.db.Collection(name).CountDocuments(ctx, bson.M{"deleted": false})
		if err != nil {
			return nil, fmt.Errorf("đếm %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}

func (r *Repository) UpdateProductStatus(ctx context.Context, id, status string) error {
	filter, err := byID(id)
	if err != nil {
		return err
	}
	res, err := r.db.Collection(CollectionProducts).UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("cập nhật trạng thái sản phẩm: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteProduct đánh dấu deleted và lưu người xoá
func (r *Repository) SoftDeleteProduct(ctx context.Context, id, accountID string, at time.Time) error {
	filter, err := byID(id)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{
		"deleted":   true,
		"deletedBy": models.DeletedBy{AccountID: accountID, DeletedAt: at},
	}}
	res, err := r.db.Collection(CollectionProducts).UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("xoá sản phẩm: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func notDeleted() bson.M {
	return bson.M{"deleted": false}
}

func sortByPosition() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
}

func (r *Repository) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return findAll[models.Order](ctx, r.db.Collection(CollectionOrders), notDeleted(), opts)
}

func (r *Repository) ListRoles(ctx context.Context) ([]models.Role, error) {
	return findAll[models.Role](ctx, r.db.Collection(CollectionRoles), notDeleted())
}

func (r *Repository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return findAll[models.Account](ctx, r.db.Collection(CollectionAccounts), notDeleted())
}

func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	return findAll[models.Brand](ctx, r.db.Collection(CollectionBrands), notDeleted())
}

func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	return findAll[models.User](ctx, r.db.Collection(CollectionUsers), notDeleted())
}

func (r *Repository) ListProductCategoriesAdmin(ctx context.Context) ([]models.ProductCategory, error) {
	return findAll[models.ProductCategory](ctx, r.db.Collection(CollectionProductCategories), notDeleted(), sortByPosition())
}

func (r *Repository) ListArticleCategoriesAdmin(ctx context.Context) ([]models.ArticleCategory, error) {
	return findAll[models.ArticleCategory](ctx, r.db.Collection(CollectionArticleCategories), notDeleted(), sortByPosition())
}

func (r *Repository) ListArticlesAdmin(ctx context.Context) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createBy.createdAt", Value: -1}})
	return findAll[models.Article](ctx, r.db.Collection(CollectionArticles), notDeleted(), opts)
}
