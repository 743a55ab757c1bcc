// Command erp-api serves the business setup, checkout, attendance and catalog API over HTTP
// and a gRPC health endpoint.
//
// @title                       ERP-lite API
// @version                     1.0
// @description                 Business setup, checkout, attendance and catalog endpoints scoped to one business per caller.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MikeMC777/erp-lite/internal/attendance"
	"github.com/MikeMC777/erp-lite/internal/auth"
	"github.com/MikeMC777/erp-lite/internal/config"
	"github.com/MikeMC777/erp-lite/internal/db"
	"github.com/MikeMC777/erp-lite/internal/product"
	"github.com/MikeMC777/erp-lite/internal/sale"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

type stores struct {
	sales      sale.Repository
	products   product.Repository
	attendance attendance.Repository
	directory  tenant.Directory
	registry   tenant.Registry
	ping       func(ctx context.Context) error
	close      func()
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.StorageDriver == config.StorageMemory {
		dir := tenant.NewMemDirectory()
		for biz, users := range cfg.DevMemberships {
			dir.Grant(biz, users...)
		}
		logger.Warn("using in-memory storage; data is lost on restart")
		return &stores{
			sales:      sale.NewMemRepo(),
			products:   product.NewMemRepo(),
			attendance: attendance.NewMemRepo(),
			directory:  dir,
			registry:   dir,
			close:      func() {},
		}, nil
	}

	pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.DBMaxConns, logger)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("schema applied")
	}
	dir := tenant.NewPGDirectory(pool)
	return &stores{
		sales:      sale.NewPGRepo(pool),
		products:   product.NewPGRepo(pool),
		attendance: attendance.NewPGRepo(pool),
		directory:  dir,
		registry:   dir,
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}

// newResolver prefers local JWT verification and falls back to asking the auth server.
func newResolver(cfg config.Config) (auth.Resolver, func()) {
	if cfg.JWTSecret != "" {
		return auth.NewJWTResolver(cfg.JWTSecret, cfg.JWTAudience), func() {}
	}
	gt := auth.NewGoTrueResolver(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.IdentityTimeout)
	return gt, func() { _ = gt.Close() }
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	lvl, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = lvl
	return zc.Build()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	cfg.Log(logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("storage", zap.Error(err))
	}
	defer st.close()

	resolver, closeResolver := newResolver(cfg)
	defer closeResolver()

	mode, err := sale.ParsePricingMode(cfg.PricingMode)
	if err != nil {
		logger.Fatal("pricing", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	gate := tenant.NewGate(resolver, st.directory, logger.Named("tenant"))
	router := newRouter(routerDeps{
		Sales: sale.NewService(st.sales, gate,
			sale.WithPricer(sale.Pricer{Mode: mode, Book: st.products}),
			sale.WithMetrics(sale.NewMetrics(reg)),
			sale.WithLogger(logger.Named("sale"))),
		Attendance: attendance.NewService(st.attendance, gate, logger.Named("attendance")),
		Products:   product.NewService(st.products, gate, logger.Named("product")),
		Businesses: tenant.NewOnboarding(gate, st.registry, logger.Named("tenant")),
		Ping:       st.ping,
		Metrics:    promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		CORSOrigin: cfg.CORSAllowOrigin,
		Log:        logger.Named("http"),
	})

	grpcSrv, hs := newGRPCServer()
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("grpc listen", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}
	go func() {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Error("grpc server", zap.Error(err))
		}
	}()
	go watchHealth(ctx, hs, st.ping, 15*time.Second, logger.Named("health"))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	hs.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	grpcSrv.GracefulStop()
	logger.Info("stopped")
}
