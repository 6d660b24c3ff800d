package database

// Tên các collection trong MongoDB
const (
	CollectionRoles             = "roles"
	CollectionAccounts          = "accounts"
	CollectionBrands            = "brands"
	CollectionProductCategories = "products-category"
	CollectionProducts          = "products"
	CollectionArticleCategories = "articles-category"
	CollectionArticles          = "articles"
	CollectionUsers             = "users"
	CollectionCarts             = "carts"
	CollectionOrders            = "orders"
)

// Collections liệt kê đủ mười collection theo thứ tự phụ thuộc khi seed
var Collections = []string{
	CollectionRoles,
	CollectionAccounts,
	CollectionBrands,
	CollectionProductCategories,
	CollectionProducts,
	CollectionArticleCategories,
	CollectionArticles,
	CollectionUsers,
	CollectionCarts,
	CollectionOrders,
}
