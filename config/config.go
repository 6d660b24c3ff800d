package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.uber.org/zap"
)

const (
	ServiceName     = "product-management"
	defaultDatabase = "product-management"
)

// MongoConfig chứa thông tin kết nối MongoDB
type MongoConfig struct {
	URI      string
	Database string
	// Thời gian tối đa chờ chọn server trước khi báo lỗi kết nối
	Timeout   time.Duration
	ForceIPv4 bool
}

type LogConfig struct {
	Level string
}

// Config được tạo một lần lúc khởi động và truyền cho các thành phần cần dùng
type Config struct {
	ServiceName   string
	Env           string
	Port          string
	PrefixAdmin   string
	SessionSecret string
	SessionMaxAge time.Duration
	TokenTTL      time.Duration
	CORSOrigins   []string
	BcryptCost    int
	Mongo         MongoConfig
	Log           LogConfig
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load đọc .env (nếu có) rồi lấy cấu hình từ biến môi trường
func Load(envFiles ...string) (*Config, error) {
	v, err := NewViper(envFiles...)
	if err != nil {
		return nil, err
	}
	return FromViper(v)
}

// NewViper trả về viper đã nạp .env và defaults; caller có thể v.Set để ghi đè
// trước khi gọi FromViper (ví dụ từ flag dòng lệnh).
func NewViper(envFiles ...string) (*viper.Viper, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("đọc file env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return v, nil
}

// SetDefaults đăng ký giá trị mặc định cho mọi khoá cấu hình
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mongo_uri", "mongodb://localhost:27017/"+defaultDatabase)
	v.SetDefault("mongo_database", "")
	v.SetDefault("mongo_timeout", 5*time.Second)
	v.SetDefault("mongo_ipv4", true)
	v.SetDefault("jwt_secret", "keyboard cat")
	v.SetDefault("session_max_age", 60*time.Second)
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("port", "5000")
	v.SetDefault("prefix_admin", "/admin")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:5000")
	v.SetDefault("bcrypt_cost", 0)
}

// FromViper dựng Config từ một viper đã có defaults
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServiceName:   ServiceName,
		Env:           v.GetString("app_env"),
		Port:          v.GetString("port"),
		PrefixAdmin:   "/" + strings.Trim(v.GetString("prefix_admin"), "/"),
		SessionSecret: v.GetString("jwt_secret"),
		SessionMaxAge: v.GetDuration("session_max_age"),
		TokenTTL:      v.GetDuration("token_ttl"),
		CORSOrigins:   splitList(v.GetString("cors_origins")),
		BcryptCost:    v.GetInt("bcrypt_cost"),
		Mongo: MongoConfig{
			URI:       v.GetString("mongo_uri"),
			Database:  v.GetString("mongo_database"),
			Timeout:   v.GetDuration("mongo_timeout"),
			ForceIPv4: v.GetBool("mongo_ipv4"),
		},
		Log: LogConfig{
			Level: v.GetString("log_level"),
		},
	}

	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = databaseFromURI(cfg.Mongo.URI)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Mongo.URI == "":
		return errors.New("thiếu MONGO_URI")
	case c.Mongo.Timeout <= 0:
		return fmt.Errorf("MONGO_TIMEOUT phải lớn hơn 0, nhận %s", c.Mongo.Timeout)
	case c.Port == "":
		return errors.New("thiếu PORT")
	case c.SessionSecret == "":
		return errors.New("thiếu JWT_SECRET")
	case c.PrefixAdmin == "/":
		return errors.New("PREFIX_ADMIN không được là /")
	}
	return nil
}

// LogFields trả về cấu hình dưới dạng field cho zap (ẩn secret)
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Env),
		zap.String("port", c.Port),
		zap.String("prefix_admin", c.PrefixAdmin),
		zap.String("mongo_database", c.Mongo.Database),
		zap.Duration("mongo_timeout", c.Mongo.Timeout),
	}
}

func databaseFromURI(uri string) string {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil || cs.Database == "" {
		return defaultDatabase
	}
	return cs.Database
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
