package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vnkhanh/product-management/config"
	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/models"
)

// testDatabase mở một database tạm; bỏ qua khi không có MONGO_TEST_URI
func testDatabase(t *testing.T) *mongo.Database {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping MongoDB integration test")
	}

	ctx := context.Background()
	client, err := config.ConnectMongo(ctx, config.MongoConfig{URI: uri, Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	db := client.Database(fmt.Sprintf("pm_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoStore(t *testing.T) {
	c := qt.New(t)
	db := testDatabase(t)
	ctx := context.Background()
	store := database.NewMongoStore(db)

	ids, err := store.InsertMany(ctx, database.CollectionRoles, []any{
		models.Role{Title: "Admin", Permissions: []string{"view"}},
		models.Role{Title: "Viewer", Permissions: []string{"view"}},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(ids, qt.HasLen, 2)
	c.Assert(ids[0], qt.Not(qt.Equals), ids[1])

	n, err := store.Count(ctx, database.CollectionRoles)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(2))

	deleted, err := store.Clear(ctx, database.CollectionRoles)
	c.Assert(err, qt.IsNil)
	c.Assert(deleted, qt.Equals, int64(2))

	ids, err = store.InsertMany(ctx, database.CollectionRoles, nil)
	c.Assert(err, qt.IsNil)
	c.Assert(ids, qt.HasLen, 0)
}

func TestRepositoryProducts(t *testing.T) {
	c := qt.New(t)
	db := testDatabase(t)
	ctx := context.Background()
	store := database.NewMongoStore(db)
	repo := database.NewRepository(db)

	ids, err := store.InsertMany(ctx, database.CollectionProducts, []any{
		models.Product{Title: "iPhone 15 Pro Max", Slug: "iphone-15-pro-max", Status: models.StatusActive, Featured: models.FeaturedYes, Position: 1, Size: []int{}},
		models.Product{Title: "Dell XPS 15", Slug: "dell-xps-15", Status: models.StatusInactive, Featured: models.FeaturedNo, Position: 2, Size: []int{}},
	})
	c.Assert(err, qt.IsNil)

	product, err := repo.ProductBySlug(ctx, "iphone-15-pro-max")
	c.Assert(err, qt.IsNil)
	c.Assert(product.ID.Hex(), qt.Equals, ids[0])

	_, err = repo.ProductBySlug(ctx, "dell-xps-15")
	c.Assert(err, qt.ErrorIs, database.ErrNotFound)

	products, total, err := repo.ListProducts(ctx, database.ProductQuery{Keyword: "IPHONE", Status: models.StatusActive})
	c.Assert(err, qt.IsNil)
	c.Assert(total, qt.Equals, int64(1))
	c.Assert(products, qt.HasLen, 1)

	c.Assert(repo.UpdateProductStatus(ctx, ids[1], models.StatusActive), qt.IsNil)
	c.Assert(repo.SoftDeleteProduct(ctx, ids[0], "acc", time.Now()), qt.IsNil)
	c.Assert(repo.SoftDeleteProduct(ctx, "not-an-id", "acc", time.Now()), qt.ErrorIs, database.ErrNotFound)

	counts, err := repo.Counts(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(counts[database.CollectionProducts], qt.Equals, int64(1))
}
