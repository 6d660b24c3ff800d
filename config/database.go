package config

import (
	"context"
	"fmt"
	"net"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ipv4Dialer ép kết nối dùng IPv4 (tránh localhost phân giải ra ::1)
type ipv4Dialer struct {
	net.Dialer
}

func (d *ipv4Dialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	if network == "tcp" {
		network = "tcp4"
	}
	return d.Dialer.DialContext(ctx, network, address)
}

// NewMongoClient tạo client. Driver kết nối lười nên lỗi ở đây chỉ do URI sai.
func NewMongoClient(cfg MongoConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)
	if cfg.ForceIPv4 {
		opts.SetDialer(&ipv4Dialer{})
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, fmt.Errorf("khởi tạo mongo client: %w", err)
	}
	return client, nil
}

// PingMongo chờ tối đa cfg.Timeout để chọn được primary
func PingMongo(ctx context.Context, client *mongo.Client, cfg MongoConfig) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("kết nối MongoDB: %w", err)
	}
	return nil
}

// ConnectMongo tạo client và kiểm tra kết nối, dùng cho công cụ seed
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	client, err := NewMongoClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := PingMongo(ctx, client, cfg); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
