package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/vnkhanh/product-management/models"
	"github.com/vnkhanh/product-management/utils"
)

// batch là các document của một bước cùng khoá logic theo đúng thứ tự
type batch struct {
	docs []any
	keys []string
}

func (b *batch) add(key string, doc any) {
	b.keys = append(b.keys, key)
	b.docs = append(b.docs, doc)
}

// builder dựng document cho một collection từ các id đã có
type builder func(refs *Refs) (batch, error)

func cartKey(userKey string) string {
	return "cart:" + strings.TrimPrefix(userKey, "user:")
}

func createBy(res *resolver, accountKey string, now time.Time) models.CreateBy {
	return models.CreateBy{AccountID: res.id(accountKey), CreatedAt: now}
}

func (r *Runner) buildRoles(_ *Refs) (batch, error) {
	var b batch
	for _, s := range r.Data.Roles {
		b.add(s.Key, models.Role{
			Title:       s.Title,
			Permissions: s.Permissions,
			Description: s.Description,
		})
	}
	return b, nil
}

func (r *Runner) buildAccounts(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	for _, s := range r.Data.Accounts {
		hashed, err := r.HashPassword(s.Password)
		if err != nil {
			return batch{}, err
		}
		b.add(s.Key, models.Account{
			FullName: s.FullName,
			Email:    s.Email,
			Password: hashed,
			Phone:    s.Phone,
			Avatar:   s.Avatar,
			RoleID:   res.id(s.Role),
			Status:   models.StatusActive,
		})
	}
	return b, res.err
}

func (r *Runner) buildBrands(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	now := r.Now()
	for _, s := range r.Data.Brands {
		b.add(s.Key, models.Brand{
			Title:       s.Title,
			Description: s.Description,
			Thumbnail:   s.Thumbnail,
			Status:      models.StatusActive,
			Slug:        utils.MakeSlug(s.Title),
			CreateBy:    createBy(res, s.CreatedBy, now),
		})
	}
	return b, res.err
}

func (r *Runner) buildProductCategories(_ *Refs) (batch, error) {
	var b batch
	for _, s := range r.Data.ProductCategories {
		b.add(s.Key, models.ProductCategory{
			Title:       s.Title,
			Description: s.Description,
			Status:      models.StatusActive,
			Position:    s.Position,
			ParentID:    "",
			Thumbnail:   s.Thumbnail,
			Slug:        utils.MakeSlug(s.Title),
		})
	}
	return b, nil
}

func (r *Runner) buildProducts(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	now := r.Now()
	for _, s := range r.Data.Products {
		size := s.Size
		if size == nil {
			size = []int{}
		}
		b.add(s.Key, models.Product{
			Title:              s.Title,
			CategoryID:         res.id(s.Category),
			Description:        s.Description,
			BrandID:            res.id(s.Brand),
			Type:               s.Type,
			Color:              s.Color,
			Price:              s.Price,
			Size:               size,
			DiscountPercentage: s.Discount,
			Stock:              s.Stock,
			Thumbnail:          s.Thumbnail,
			Status:             models.StatusActive,
			Featured:           s.Featured,
			Position:           s.Position,
			Slug:               utils.MakeSlug(s.Title),
			CreateBy:           createBy(res, s.CreatedBy, now),
		})
	}
	return b, res.err
}

func (r *Runner) buildArticleCategories(_ *Refs) (batch, error) {
	var b batch
	for _, s := range r.Data.ArticleCategories {
		b.add(s.Key, models.ArticleCategory{
			Title:       s.Title,
			Description: s.Description,
			Status:      models.StatusActive,
			Position:    s.Position,
			ParentID:    "",
			Thumbnail:   s.Thumbnail,
			Slug:        utils.MakeSlug(s.Title),
		})
	}
	return b, nil
}

func (r *Runner) buildArticles(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	now := r.Now()
	for _, s := range r.Data.Articles {
		b.add(s.Key, models.Article{
			Title:       s.Title,
			CategoryID:  res.id(s.Category),
			Description: s.Description,
			Post:        s.Post,
			Thumbnail:   s.Thumbnail,
			Status:      models.StatusActive,
			Slug:        utils.MakeSlug(s.Title),
			CreateBy:    createBy(res, s.CreatedBy, now),
		})
	}
	return b, res.err
}

func (r *Runner) buildUsers(_ *Refs) (batch, error) {
	var b batch
	for _, s := range r.Data.Users {
		hashed, err := r.HashPassword(s.Password)
		if err != nil {
			return batch{}, err
		}
		b.add(s.Key, models.User{
			FullName: s.FullName,
			Email:    s.Email,
			Password: hashed,
			Phone:    s.Phone,
			Avatar:   s.Avatar,
			Status:   models.StatusActive,
		})
	}
	return b, nil
}

// buildCarts tạo đúng một giỏ hàng cho mỗi user
func (r *Runner) buildCarts(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	for _, s := range r.Data.Users {
		b.add(cartKey(s.Key), models.Cart{UserID: res.id(s.Key)})
	}
	return b, res.err
}

// buildOrders lấy giá và giảm giá từ chính dữ liệu sản phẩm đã seed
func (r *Runner) buildOrders(refs *Refs) (batch, error) {
	var b batch
	res := &resolver{refs: refs}
	for _, s := range r.Data.Orders {
		items := make([]models.OrderItem, 0, len(s.Items))
		for _, item := range s.Items {
			product, ok := r.Data.product(item.Product)
			if !ok {
				return batch{}, fmt.Errorf("%w: %s", ErrUnresolvedRef, item.Product)
			}
			items = append(items, models.OrderItem{
				ProductID:          res.id(item.Product),
				Quantity:           item.Quantity,
				Price:              product.Price,
				DiscountPercentage: product.Discount,
			})
		}
		b.add(s.Key, models.Order{
			UserID:   res.id(s.User),
			CartID:   res.id(cartKey(s.User)),
			UserInfo: s.Contact,
			Products: items,
		})
	}
	return b, res.err
}
