package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/services"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string `json:"lastName" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Age       int    `json:"age" binding:"required,gt=0"`
}

type CustomerHandler struct {
	log             *logger.Logger
	customerService services.CustomerService
}

func NewCustomerHandler(log *logger.Logger, customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		log:             log.With("handler", "CustomerHandler"),
		customerService: customerService,
	}
}

func (ch *CustomerHandler) GetCustomers(c *gin.Context) {
	ch.log.Info("Getting all customers")
	customers, err := ch.customerService.GetCustomers(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (ch *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	customer, err := ch.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ch *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	customer, err := ch.customerService.CreateCustomer(c.Request.Context(), services.CustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (ch *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperrors.Invalidf("%s", err.Error()))
		return
	}
	customer, err := ch.customerService.UpdateCustomer(c.Request.Context(), id, services.CustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Age:       req.Age,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (ch *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := PathID(c)
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := ch.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
