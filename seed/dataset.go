package seed

import "github.com/vnkhanh/product-management/models"

type roleSeed struct {
	Key         string
	Title       string
	Permissions []string
	Description string
}

type accountSeed struct {
	Key      string
	FullName string
	Email    string
	Password string
	Phone    string
	Avatar   string
	Role     string
}

type brandSeed struct {
	Key         string
	Title       string
	Description string
	Thumbnail   string
	CreatedBy   string
}

// categorySeed dùng chung cho danh mục sản phẩm và danh mục bài viết
type categorySeed struct {
	Key         string
	Title       string
	Description string
	Position    int
	Thumbnail   string
}

type productSeed struct {
	Key         string
	Title       string
	Category    string
	Description string
	Brand       string
	Type        string
	Color       string
	Price       int64
	Size        []int
	Discount    int
	Stock       int
	Thumbnail   string
	Featured    string
	Position    int
	CreatedBy   string
}

type articleSeed struct {
	Key         string
	Title       string
	Category    string
	Description string
	Post        string
	Thumbnail   string
	CreatedBy   string
}

type userSeed struct {
	Key      string
	FullName string
	Email    string
	Password string
	Phone    string
	Avatar   string
}

type orderItemSeed struct {
	Product  string
	Quantity int
}

// orderSeed tham chiếu user; giỏ hàng là giỏ của chính user đó
type orderSeed struct {
	Key     string
	User    string
	Contact models.UserInfo
	Items   []orderItemSeed
}

// Dataset là toàn bộ dữ liệu mẫu, các tham chiếu viết bằng khoá logic
type Dataset struct {
	Roles             []roleSeed
	Accounts          []accountSeed
	Brands            []brandSeed
	ProductCategories []categorySeed
	Products          []productSeed
	ArticleCategories []categorySeed
	Articles          []articleSeed
	Users             []userSeed
	Orders            []orderSeed
}

func (d *Dataset) product(key string) (productSeed, bool) {
	for _, p := range d.Products {
		if p.Key == key {
			return p, true
		}
	}
	return productSeed{}, false
}

const (
	accountPassword = "123456"
	userPassword    = "password123"
)

// DefaultDataset trả về bộ dữ liệu mẫu của cửa hàng
func DefaultDataset() *Dataset {
	return &Dataset{
		Roles: []roleSeed{
			{
				Key:         "role:admin",
				Title:       "Admin",
				Permissions: []string{"view", "create", "edit", "delete", "publish"},
				Description: "Quyền quản trị viên - toàn quyền hệ thống",
			},
			{
				Key:         "role:editor",
				Title:       "Editor",
				Permissions: []string{"view", "create", "edit", "publish"},
				Description: "Quyền biên tập - có thể sửa và xuất bản nội dung",
			},
			{
				Key:         "role:contributor",
				Title:       "Contributor",
				Permissions: []string{"view", "create", "edit"},
				Description: "Quyền đóng góp - có thể tạo và sửa nội dung riêng",
			},
			{
				Key:         "role:viewer",
				Title:       "Viewer",
				Permissions: []string{"view"},
				Description: "Quyền xem - chỉ có thể xem nội dung",
			},
		},

		Accounts: []accountSeed{
			{
				Key:      "account:admin",
				FullName: "Nguyễn Bình",
				Email:    "admin@example.com",
				Password: accountPassword,
				Phone:    "0123456789",
				Avatar:   "https://via.placeholder.com/150?text=Admin",
				Role:     "role:admin",
			},
			{
				Key:      "account:editor",
				FullName: "Trần Minh",
				Email:    "editor@example.com",
				Password: accountPassword,
				Phone:    "0987654321",
				Avatar:   "https://via.placeholder.com/150?text=Editor",
				Role:     "role:editor",
			},
			{
				Key:      "account:contributor",
				FullName: "Lê Anh",
				Email:    "contributor@example.com",
				Password: accountPassword,
				Phone:    "0912345678",
				Avatar:   "https://via.placeholder.com/150?text=Contributor",
				Role:     "role:contributor",
			},
		},

		Brands: []brandSeed{
			{Key: "brand:apple", Title: "Apple", Description: "Công ty công nghệ hàng đầu thế giới", Thumbnail: "https://via.placeholder.com/200?text=Apple", CreatedBy: "account:admin"},
			{Key: "brand:samsung", Title: "Samsung", Description: "Tập đoàn điện tử Hàn Quốc", Thumbnail: "https://via.placeholder.com/200?text=Samsung", CreatedBy: "account:admin"},
			{Key: "brand:dell", Title: "Dell", Description: "Nhà sản xuất máy tính và thiết bị công nghệ", Thumbnail: "https://via.placeholder.com/200?text=Dell", CreatedBy: "account:admin"},
			{Key: "brand:nike", Title: "Nike", Description: "Thương hiệu thể thao hàng đầu", Thumbnail: "https://via.placeholder.com/200?text=Nike", CreatedBy: "account:admin"},
			{Key: "brand:adidas", Title: "Adidas", Description: "Công ty sản xuất dụng cụ thể thao", Thumbnail: "https://via.placeholder.com/200?text=Adidas", CreatedBy: "account:admin"},
			{Key: "brand:sony", Title: "Sony", Description: "Tập đoàn điện tử Nhật Bản", Thumbnail: "https://via.placeholder.com/200?text=Sony", CreatedBy: "account:admin"},
		},

		ProductCategories: []categorySeed{
			{Key: "product-category:electronics", Title: "Điện tử", Description: "Các sản phẩm điện tử và công nghệ", Position: 1, Thumbnail: "https://via.placeholder.com/200?text=Electronics"},
			{Key: "product-category:phones", Title: "Điện thoại", Description: "Điện thoại di động và smartphone", Position: 1, Thumbnail: "https://via.placeholder.com/200?text=Phones"},
			{Key: "product-category:laptops", Title: "Máy tính xách tay", Description: "Laptop và máy tính xách tay", Position: 2, Thumbnail: "https://via.placeholder.com/200?text=Laptops"},
			{Key: "product-category:accessories", Title: "Phụ kiện", Description: "Phụ kiện điện thoại và máy tính", Position: 3, Thumbnail: "https://via.placeholder.com/200?text=Accessories"},
			{Key: "product-category:fashion", Title: "Thời trang", Description: "Quần áo và phụ kiện thời trang", Position: 4, Thumbnail: "https://via.placeholder.com/200?text=Fashion"},
			{Key: "product-category:shoes", Title: "Giày dép", Description: "Giày thể thao và dép", Position: 5, Thumbnail: "https://via.placeholder.com/200?text=Shoes"},
		},

		Products: []productSeed{
			{
				Key:         "product:iphone-15-pro-max",
				Title:       "iPhone 15 Pro Max",
				Category:    "product-category:phones",
				Description: "Điện thoại iPhone mới nhất với công nghệ A18 Pro",
				Brand:       "brand:apple",
				Type:        "Smartphone",
				Color:       "Black",
				Price:       39999000,
				Size:        []int{256, 512, 1024},
				Discount:    10,
				Stock:       50,
				Thumbnail:   "https://via.placeholder.com/300?text=iPhone+15+Pro",
				Featured:    models.FeaturedYes,
				Position:    1,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:galaxy-s24-ultra",
				Title:       "Samsung Galaxy S24 Ultra",
				Category:    "product-category:phones",
				Description: "Flagship Samsung với camera siêu zoom và màn hình AMOLED",
				Brand:       "brand:samsung",
				Type:        "Smartphone",
				Color:       "Gray",
				Price:       34999000,
				Size:        []int{256, 512},
				Discount:    15,
				Stock:       45,
				Thumbnail:   "https://via.placeholder.com/300?text=Galaxy+S24",
				Featured:    models.FeaturedYes,
				Position:    2,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:macbook-pro-16",
				Title:       "MacBook Pro 16 inch M3 Max",
				Category:    "product-category:laptops",
				Description: "Laptop Apple mạnh mẽ cho designer và lập trình viên",
				Brand:       "brand:apple",
				Type:        "Laptop",
				Color:       "Space Gray",
				Price:       79999000,
				Size:        []int{512, 1024},
				Discount:    5,
				Stock:       20,
				Thumbnail:   "https://via.placeholder.com/300?text=MacBook+Pro",
				Featured:    models.FeaturedYes,
				Position:    1,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:dell-xps-15",
				Title:       "Dell XPS 15",
				Category:    "product-category:laptops",
				Description: "Laptop Windows cao cấp với hiệu năng mạnh",
				Brand:       "brand:dell",
				Type:        "Laptop",
				Color:       "Silver",
				Price:       59999000,
				Size:        []int{512},
				Discount:    12,
				Stock:       30,
				Thumbnail:   "https://via.placeholder.com/300?text=Dell+XPS+15",
				Featured:    models.FeaturedNo,
				Position:    2,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:nike-air-max-90",
				Title:       "Nike Air Max 90",
				Category:    "product-category:shoes",
				Description: "Giày thể thao tuyệt vời với công nghệ Air cushioning",
				Brand:       "brand:nike",
				Type:        "Shoes",
				Color:       "White",
				Price:       3500000,
				Size:        []int{36, 37, 38, 39, 40, 41, 42, 43},
				Discount:    20,
				Stock:       100,
				Thumbnail:   "https://via.placeholder.com/300?text=Nike+Air+Max",
				Featured:    models.FeaturedYes,
				Position:    1,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:adidas-ultraboost-23",
				Title:       "Adidas Ultraboost 23",
				Category:    "product-category:shoes",
				Description: "Giày chạy bộ Adidas với công nghệ Boost",
				Brand:       "brand:adidas",
				Type:        "Shoes",
				Color:       "Black",
				Price:       3200000,
				Size:        []int{37, 38, 39, 40, 41, 42},
				Discount:    18,
				Stock:       80,
				Thumbnail:   "https://via.placeholder.com/300?text=Adidas+Ultraboost",
				Featured:    models.FeaturedNo,
				Position:    2,
				CreatedBy:   "account:admin",
			},
			{
				Key:         "product:sony-wh-1000xm5",
				Title:       "Sony WH-1000XM5",
				Category:    "product-category:accessories",
				Description: "Tai nghe chống ồn cao cấp của Sony",
				Brand:       "brand:sony",
				Type:        "Headphone",
				Color:       "Black",
				Price:       8999000,
				Size:        []int{},
				Discount:    8,
				Stock:       40,
				Thumbnail:   "https://via.placeholder.com/300?text=Sony+Headphone",
				Featured:    models.FeaturedNo,
				Position:    1,
				CreatedBy:   "account:admin",
			},
		},

		ArticleCategories: []categorySeed{
			{Key: "article-category:tech-news", Title: "Tin tức công nghệ", Description: "Các bài viết về tin tức công nghệ mới nhất", Position: 1, Thumbnail: "https://via.placeholder.com/200?text=Tech+News"},
			{Key: "article-category:guides", Title: "Hướng dẫn sử dụng", Description: "Hướng dẫn chi tiết cách sử dụng các sản phẩm", Position: 2, Thumbnail: "https://via.placeholder.com/200?text=Guides"},
			{Key: "article-category:reviews", Title: "Review sản phẩm", Description: "Đánh giá chi tiết các sản phẩm mới", Position: 3, Thumbnail: "https://via.placeholder.com/200?text=Reviews"},
			{Key: "article-category:tips", Title: "Mẹo và thủ thuật", Description: "Các mẹo và thủ thuật hữu ích", Position: 4, Thumbnail: "https://via.placeholder.com/200?text=Tips+Tricks"},
		},

		Articles: []articleSeed{
			{
				Key:         "article:iphone-guide",
				Title:       "Hướng dẫn sử dụng iPhone 15 Pro Max",
				Category:    "article-category:guides",
				Description: "Hướng dẫn chi tiết cách sử dụng tất cả tính năng của iPhone 15 Pro Max",
				Post:        "<p>Bài viết chi tiết về cách sử dụng iPhone 15 Pro Max...</p>",
				Thumbnail:   "https://via.placeholder.com/400?text=iPhone+Guide",
				CreatedBy:   "account:admin",
			},
			{
				Key:         "article:galaxy-review",
				Title:       "Review Samsung Galaxy S24 Ultra",
				Category:    "article-category:reviews",
				Description: "Đánh giá chi tiết Galaxy S24 Ultra sau 2 tuần sử dụng",
				Post:        "<p>Review chi tiết về Samsung Galaxy S24 Ultra...</p>",
				Thumbnail:   "https://via.placeholder.com/400?text=Galaxy+Review",
				CreatedBy:   "account:editor",
			},
			{
				Key:         "article:battery-tips",
				Title:       "10 mẹo giúp pin laptop kéo dài hơn",
				Category:    "article-category:tips",
				Description: "Các mẹo giúp tăng thời gian sử dụng pin laptop",
				Post:        "<p>10 mẹo thực tế để giúp pin laptop của bạn hoạt động lâu hơn...</p>",
				Thumbnail:   "https://via.placeholder.com/400?text=Battery+Tips",
				CreatedBy:   "account:admin",
			},
			{
				Key:         "article:macbook-news",
				Title:       "Tin tức: Apple ra mắt MacBook Pro mới",
				Category:    "article-category:tech-news",
				Description: "Apple vừa công bố MacBook Pro 16 inch với chip M3 Max mạnh mẽ",
				Post:        "<p>Tin tức mới nhất về MacBook Pro từ Apple...</p>",
				Thumbnail:   "https://via.placeholder.com/400?text=Apple+News",
				CreatedBy:   "account:editor",
			},
		},

		Users: []userSeed{
			{Key: "user:a", FullName: "Lê Văn A", Email: "leva@example.com", Password: userPassword, Phone: "0912345678", Avatar: "https://via.placeholder.com/150?text=User1"},
			{Key: "user:b", FullName: "Trần Thị B", Email: "tranthib@example.com", Password: userPassword, Phone: "0987654321", Avatar: "https://via.placeholder.com/150?text=User2"},
			{Key: "user:c", FullName: "Phạm Văn C", Email: "phamvanc@example.com", Password: userPassword, Phone: "0934567890", Avatar: "https://via.placeholder.com/150?text=User3"},
			{Key: "user:d", FullName: "Hoàng Thị D", Email: "hoangthid@example.com", Password: userPassword, Phone: "0923456789", Avatar: "https://via.placeholder.com/150?text=User4"},
		},

		Orders: []orderSeed{
			{
				Key:  "order:1",
				User: "user:a",
				Contact: models.UserInfo{
					FullName: "Lê Văn A",
					Phone:    "0912345678",
					Address:  "123 Đường Nguyễn Huệ, Quận 1, TP.HCM",
				},
				Items: []orderItemSeed{
					{Product: "product:iphone-15-pro-max", Quantity: 1},
					{Product: "product:nike-air-max-90", Quantity: 2},
				},
			},
			{
				Key:  "order:2",
				User: "user:b",
				Contact: models.UserInfo{
					FullName: "Trần Thị B",
					Phone:    "0987654321",
					Address:  "456 Đường Lê Lợi, Quận 1, TP.HCM",
				},
				Items: []orderItemSeed{
					{Product: "product:macbook-pro-16", Quantity: 1},
				},
			},
			{
				Key:  "order:3",
				User: "user:c",
				Contact: models.UserInfo{
					FullName: "Phạm Văn C",
					Phone:    "0934567890",
					Address:  "789 Đường Trần Hưng Đạo, Quận 1, TP.HCM",
				},
				Items: []orderItemSeed{
					{Product: "product:galaxy-s24-ultra", Quantity: 1},
					{Product: "product:adidas-ultraboost-23", Quantity: 1},
				},
			},
		},
	}
}
