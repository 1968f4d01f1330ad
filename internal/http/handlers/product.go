package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/services"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

type ProductRequest struct {
	ProductName string          `json:"productName" binding:"required,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required,gt=0"`
}

type ProductHandler struct {
	log            *logger.Logger
	productService services.ProductService
}

func NewProductHandler(log *logger.Logger, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:            log.With("handler", "ProductHandler"),
		productService: productService,
	}
}

func (ph *ProductHandler) GetProducts(c *gin.Context) {
	ph.log.Info("Getting all products")
	products, err := ph.productService.GetProducts(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ph *ProductHandler) GetProduct(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	product, err := ph.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ph *ProductHandler) GetProductsForOrder(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	products, err := ph.productService.GetProductsForOrder(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ph *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	product, err := ph.productService.CreateProduct(c.Request.Context(), services.ProductInput{
		ProductName: req.ProductName,
		Price:       req.Price,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (ph *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	product, err := ph.productService.UpdateProduct(c.Request.Context(), id, services.ProductInput{
		ProductName: req.ProductName,
		Price:       req.Price,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (ph *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := ph.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
