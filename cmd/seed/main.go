package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vnkhanh/product-management/config"
	"github.com/vnkhanh/product-management/database"
	"github.com/vnkhanh/product-management/logger"
	"github.com/vnkhanh/product-management/metrics"
	"github.com/vnkhanh/product-management/seed"
	"github.com/vnkhanh/product-management/utils"
)

const (
	mongoURIFlag = "mongo-uri"
	databaseFlag = "database"
	timeoutFlag  = "timeout"
)

// storeOpener mở kết nối tới nơi lưu dữ liệu; close được gọi khi seed xong
type storeOpener func(ctx context.Context, cfg config.MongoConfig) (store seed.Store, close func(), err error)

func openMongoStore(ctx context.Context, cfg config.MongoConfig) (seed.Store, func(), error) {
	client, err := config.ConnectMongo(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		_ = client.Disconnect(context.Background())
	}
	return database.NewMongoStore(client.Database(cfg.Database)), closeFn, nil
}

func newSeedCommand(out io.Writer, open storeOpener) *cobra.Command {
	flags := map[string]cobraflags.Flag{
		mongoURIFlag: &cobraflags.StringFlag{
			Name:  mongoURIFlag,
			Value: "",
			Usage: "MongoDB connection string (overrides MONGO_URI)",
		},
		databaseFlag: &cobraflags.StringFlag{
			Name:  databaseFlag,
			Value: "",
			Usage: "Database name (overrides MONGO_DATABASE, defaults to the one in the URI)",
		},
		timeoutFlag: &cobraflags.StringFlag{
			Name:  timeoutFlag,
			Value: "",
			Usage: "Server selection timeout, e.g. 5s (overrides MONGO_TIMEOUT)",
		},
	}

	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Replace all store data with the sample dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := config.NewViper()
			if err != nil {
				return err
			}
			if uri := flags[mongoURIFlag].GetString(); uri != "" {
				v.Set("mongo_uri", uri)
			}
			if db := flags[databaseFlag].GetString(); db != "" {
				v.Set("mongo_database", db)
			}
			if timeout := flags[timeoutFlag].GetString(); timeout != "" {
				d, err := time.ParseDuration(timeout)
				if err != nil {
					return fmt.Errorf("--timeout không hợp lệ: %w", err)
				}
				v.Set("mongo_timeout", d)
			}
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, out, open)
		},
	}
	cobraflags.RegisterMap(cmd, flags)
	return cmd
}

func runSeed(ctx context.Context, cfg *config.Config, out io.Writer, open storeOpener) error {
	log, err := logger.New(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Env,
		ServiceName: cfg.ServiceName + "-seed",
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("seed configuration", cfg.LogFields()...)

	store, closeStore, err := open(ctx, cfg.Mongo)
	if err != nil {
		log.Error("cannot connect to MongoDB", zap.Error(err))
		return err
	}
	defer closeStore()
	fmt.Fprintln(out, "✓ Connected to MongoDB")

	runner := &seed.Runner{
		Store:   store,
		Out:     out,
		Logger:  log,
		Metrics: metrics.NewSeedMetrics(prometheus.NewRegistry()),
		HashPassword: func(plain string) (string, error) {
			return utils.HashPassword(plain, cfg.BcryptCost)
		},
	}
	result, err := runner.Run(ctx)
	if err != nil {
		log.Error("seeding failed", zap.Error(err))
		return err
	}
	log.Info("seeding completed", zap.Int("references", result.Refs.Len()))
	return nil
}

// execute chạy lệnh seed và trả về exit code; ctx bị huỷ thì seed dừng ở bước đang chạy
func execute(ctx context.Context, args []string, out, errOut io.Writer, open storeOpener) int {
	cmd := newSeedCommand(out, open)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(errOut, "❌ Error seeding data: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, openMongoStore)
	stop()
	os.Exit(code)
}
