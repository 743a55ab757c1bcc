package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/erp-lite/internal/attendance"
	"github.com/MikeMC777/erp-lite/internal/httpx"
	"github.com/MikeMC777/erp-lite/internal/product"
	"github.com/MikeMC777/erp-lite/internal/sale"
	"github.com/MikeMC777/erp-lite/internal/tenant"
)

// errorResponse is the body of every failed request; referenced by the swagger annotations.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}

// @Summary      Create sale
// @Description  Records a sale and its items all-or-nothing.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sale.CreateRequest  true  "Cart"
// @Success      200   {object}  sale.CreateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/sales [post]
func createSaleHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sale.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadBody(c, err)
			return
		}
		rc, err := svc.Create(c.Request.Context(), httpx.Credential(c), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, sale.NewCreateResponse(rc))
	}
}

// @Summary   List sales
// @Tags      sales
// @Produce   json
// @Security  BearerAuth
// @Param     business_id  query     string  true   "Business ID"
// @Param     limit        query     int     false  "Limit (max 100)"
// @Param     offset       query     int     false  "Offset"
// @Success   200          {object}  sale.ListResponse
// @Failure   400          {object}  errorResponse
// @Failure   401          {object}  errorResponse
// @Failure   403          {object}  errorResponse
// @Failure   500          {object}  errorResponse
// @Router    /api/v1/sales [get]
func listSalesHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), httpx.Credential(c),
			c.Query("business_id"), queryInt(c, "limit"), queryInt(c, "offset"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary   Get sale
// @Tags      sales
// @Produce   json
// @Security  BearerAuth
// @Param     id           path      string  true  "Sale ID"
// @Param     business_id  query     string  true  "Business ID"
// @Success   200          {object}  sale.Sale
// @Failure   400          {object}  errorResponse
// @Failure   401          {object}  errorResponse
// @Failure   403          {object}  errorResponse
// @Failure   404          {object}  errorResponse
// @Failure   500          {object}  errorResponse
// @Router    /api/v1/sales/{id} [get]
func getSaleHandler(svc *sale.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), httpx.Credential(c), c.Query("business_id"), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary   Mark attendance
// @Tags      attendance
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body  body      attendance.MarkRequest  true  "Attendance"
// @Success   200   {object}  attendance.MarkResponse
// @Failure   400   {object}  errorResponse
// @Failure   401   {object}  errorResponse
// @Failure   403   {object}  errorResponse
// @Failure   404   {object}  errorResponse
// @Failure   500   {object}  errorResponse
// @Router    /api/v1/attendance [post]
func markAttendanceHandler(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req attendance.MarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadBody(c, err)
			return
		}
		out, err := svc.Mark(c.Request.Context(), httpx.Credential(c), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary   List a day of attendance
// @Tags      attendance
// @Produce   json
// @Security  BearerAuth
// @Param     business_id  query     string  true   "Business ID"
// @Param     date         query     string  false  "YYYY-MM-DD, defaults to today"
// @Success   200          {object}  attendance.ListResponse
// @Failure   400          {object}  errorResponse
// @Failure   401          {object}  errorResponse
// @Failure   403          {object}  errorResponse
// @Failure   500          {object}  errorResponse
// @Router    /api/v1/attendance [get]
func listAttendanceHandler(svc *attendance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), httpx.Credential(c), c.Query("business_id"), c.Query("date"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary   List products
// @Tags      products
// @Produce   json
// @Security  BearerAuth
// @Param     business_id  query     string  true   "Business ID"
// @Param     q            query     string  false  "Search in name, category and sku"
// @Param     limit        query     int     false  "Limit (max 100)"
// @Param     offset       query     int     false  "Offset"
// @Param     low_stock    query     bool    false  "Only products at or under their low stock limit"
// @Success   200          {object}  product.ListResponse
// @Failure   400          {object}  errorResponse
// @Failure   401          {object}  errorResponse
// @Failure   403          {object}  errorResponse
// @Failure   500          {object}  errorResponse
// @Router    /api/v1/products [get]
func listProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		lowOnly, _ := strconv.ParseBool(c.Query("low_stock"))
		out, err := svc.List(c.Request.Context(), httpx.Credential(c), c.Query("business_id"), product.Query{
			Q:            c.Query("q"),
			LowStockOnly: lowOnly,
			Limit:        queryInt(c, "limit"),
			Offset:       queryInt(c, "offset"),
		})
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary   Get product
// @Tags      products
// @Produce   json
// @Security  BearerAuth
// @Param     id           path      string  true  "Product ID"
// @Param     business_id  query     string  true  "Business ID"
// @Success   200          {object}  product.Product
// @Failure   400          {object}  errorResponse
// @Failure   401          {object}  errorResponse
// @Failure   403          {object}  errorResponse
// @Failure   404          {object}  errorResponse
// @Failure   500          {object}  errorResponse
// @Router    /api/v1/products/{id} [get]
func getProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), httpx.Credential(c), c.Query("business_id"), c.Param("id"))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary      Set up business
// @Description  Creates the caller's business and attaches the caller's profile to it.
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tenant.SetupRequest  true  "Business"
// @Success      201   {object}  tenant.SetupResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/v1/businesses [post]
func setupBusinessHandler(svc *tenant.Onboarding) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tenant.SetupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httpx.BadBody(c, err)
			return
		}
		out, err := svc.Setup(c.Request.Context(), httpx.Credential(c), req)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}
