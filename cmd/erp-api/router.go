package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/erp-lite/docs"
	"github.com/MikeMC777/erp-lite/internal/attendance"
	"github.com/MikeMC777/erp-lite/internal/httpx"
	"github.com/MikeMC777/erp-lite/internal/product"
	"github.com/MikeMC777/erp-lite/internal/sale"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

func init() {
	// money goes out as a JSON number, e.g. "total_amount": 25
	decimal.MarshalJSONWithoutQuotes = true
}

type routerDeps struct {
	Sales      *sale.Service
	Attendance *attendance.Service
	Products   *product.Service
	Businesses *tenant.Onboarding
	// Ping checks the storage backend; nil means always healthy.
	Ping       func(ctx context.Context) error
	Metrics    http.Handler
	CORSOrigin string
	Log        *zap.Logger
}

func newRouter(d routerDeps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(d.Log), httpx.Recovery(d.Log), httpx.CORS(d.CORSOrigin))

	r.GET("/healthz", healthHandler(d.Ping))
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics))
	}
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// paths the browser client already calls
	fn := r.Group("/functions/v1")
	fn.POST("/create-sale", createSaleHandler(d.Sales))
	fn.POST("/mark-attendance", markAttendanceHandler(d.Attendance))

	v1 := r.Group("/api/v1")
	v1.POST("/sales", createSaleHandler(d.Sales))
	v1.GET("/sales", listSalesHandler(d.Sales))
	v1.GET("/sales/:id", getSaleHandler(d.Sales))
	v1.POST("/attendance", markAttendanceHandler(d.Attendance))
	v1.GET("/attendance", listAttendanceHandler(d.Attendance))
	v1.GET("/products", listProductsHandler(d.Products))
	v1.GET("/products/:id", getProductHandler(d.Products))
	v1.POST("/businesses", setupBusinessHandler(d.Businesses))

	// unmatched paths still run the middleware chain, so CORS answers preflight here
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return r
}

func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
