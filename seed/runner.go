package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/metrics"
	"github.com/vnkhanh/product-management/utils"
)

// Store là khả năng lưu trữ tối thiểu mà quá trình seed cần
type Store interface {
	Clear(ctx context.Context, collection string) (int64, error)
	InsertMany(ctx context.Context, collection string, docs []any) ([]string, error)
	Count(ctx context.Context, collection string) (int64, error)
}

// Runner xoá sạch mười collection rồi chèn dữ liệu mẫu theo thứ tự phụ thuộc
type Runner struct {
	Store   Store
	Data    *Dataset
	Out     io.Writer
	Logger  *zap.Logger
	Metrics *metrics.SeedMetrics

	Now          func() time.Time
	HashPassword func(plain string) (string, error)
}

// Result ghi lại số bản ghi đã chèn và số bản ghi đọc lại từ store
type Result struct {
	Inserted map[string]int
	Stored   map[string]int64
	Refs     *Refs
}

type step struct {
	collection string
	label      string
	summary    string
	build      builder
}

func (r *Runner) steps() []step {
	return []step{
		{database.CollectionRoles, "roles", "Roles", r.buildRoles},
		{database.CollectionAccounts, "accounts", "Accounts", r.buildAccounts},
		{database.CollectionBrands, "brands", "Brands", r.buildBrands},
		{database.CollectionProductCategories, "product categories", "Product Categories", r.buildProductCategories},
		{database.CollectionProducts, "products", "Products", r.buildProducts},
		{database.CollectionArticleCategories, "article categories", "Article Categories", r.buildArticleCategories},
		{database.CollectionArticles, "articles", "Articles", r.buildArticles},
		{database.CollectionUsers, "users", "Users", r.buildUsers},
		{database.CollectionCarts, "carts", "Carts", r.buildCarts},
		{database.CollectionOrders, "orders", "Orders", r.buildOrders},
	}
}

func (r *Runner) setDefaults() {
	if r.Data == nil {
		r.Data = DefaultDataset()
	}
	if r.Out == nil {
		r.Out = io.Discard
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.HashPassword == nil {
		r.HashPassword = func(plain string) (string, error) {
			return utils.HashPassword(plain, 0)
		}
	}
}

// Run thực hiện một lần seed. Lỗi ở bất kỳ bước nào dừng toàn bộ các bước sau;
// dữ liệu đã chèn trước đó được giữ nguyên.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.Store == nil {
		return nil, errors.New("seed: thiếu store")
	}
	r.setDefaults()

	if err := r.clearAll(ctx); err != nil {
		return nil, fmt.Errorf("clear old data: %w", err)
	}
	fmt.Fprintln(r.Out, "✓ Cleared old data")

	result := &Result{
		Inserted: make(map[string]int),
		Stored:   make(map[string]int64),
		Refs:     NewRefs(),
	}

	steps := r.steps()
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("seed %s: %w", s.label, err)
		}

		b, err := s.build(result.Refs)
		if err != nil {
			return result, fmt.Errorf("seed %s: %w", s.label, err)
		}

		ids, err := r.Store.InsertMany(ctx, s.collection, b.docs)
		if err != nil {
			return result, fmt.Errorf("seed %s: %w", s.label, err)
		}
		if err := result.Refs.Register(b.keys, ids); err != nil {
			return result, fmt.Errorf("seed %s: %w", s.label, err)
		}

		result.Inserted[s.collection] = len(ids)
		r.Metrics.Inserted(s.collection, len(ids))
		r.Logger.Debug("inserted documents", zap.String("collection", s.collection), zap.Int("count", len(ids)))
		fmt.Fprintf(r.Out, "✓ Inserted %d %s\n", len(ids), s.label)
	}

	for _, s := range steps {
		n, err := r.Store.Count(ctx, s.collection)
		if err != nil {
			return result, fmt.Errorf("count %s: %w", s.label, err)
		}
		result.Stored[s.collection] = n
		if n != int64(result.Inserted[s.collection]) {
			r.Logger.Warn("stored count differs from inserted count",
				zap.String("collection", s.collection),
				zap.Int("inserted", result.Inserted[s.collection]),
				zap.Int64("stored", n))
		}
	}

	r.printSummary(steps, result)
	return result, nil
}

// clearAll xoá song song mười collection và chờ tất cả hoàn tất
func (r *Runner) clearAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range database.Collections {
		g.Go(func() error {
			n, err := r.Store.Clear(gctx, name)
			if err != nil {
				return err
			}
			r.Metrics.Cleared(name, n)
			r.Logger.Debug("cleared collection", zap.String("collection", name), zap.Int64("deleted", n))
			return nil
		})
	}
	return g.Wait()
}

func (r *Runner) printSummary(steps []step, result *Result) {
	divider := strings.Repeat("═", 50)

	fmt.Fprintln(r.Out, "\n✅ Database seeding completed successfully!")
	fmt.Fprintln(r.Out, "\n📊 DATA SUMMARY:")
	fmt.Fprintln(r.Out, divider)
	for _, s := range steps {
		fmt.Fprintf(r.Out, "%-22s%d\n", s.summary+":", result.Stored[s.collection])
	}
	fmt.Fprintln(r.Out, divider)
	fmt.Fprintf(r.Out, "\nData inserted successfully at: %s\n", r.Now().Format("15:04:05 2/1/2006"))
}
