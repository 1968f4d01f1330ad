package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/stackmart/marketplace-backend/internal/http/handlers"
	"github.com/stackmart/marketplace-backend/internal/http/middleware"
)

type RouterConfig struct {
	ServiceName     string
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	OrderHandler    *handlers.OrderHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5174"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api/v1")

	customers := api.Group("/customers")
	{
		customers.GET("/", cfg.CustomerHandler.GetCustomers)
		customers.GET("/:id", cfg.CustomerHandler.GetCustomer)
		customers.POST("/create", cfg.CustomerHandler.CreateCustomer)
		customers.PUT("/update/:id", cfg.CustomerHandler.UpdateCustomer)
		customers.DELETE("/delete/:id", cfg.CustomerHandler.DeleteCustomer)
	}

	products := api.Group("/products")
	{
		products.GET("/", cfg.ProductHandler.GetProducts)
		products.GET("/:id", cfg.ProductHandler.GetProduct)
		products.GET("/order/:id", cfg.ProductHandler.GetProductsForOrder)
		products.POST("/create", cfg.ProductHandler.CreateProduct)
		products.PUT("/update/:id", cfg.ProductHandler.UpdateProduct)
		products.DELETE("/delete/:id", cfg.ProductHandler.DeleteProduct)
	}

	orders := api.Group("/orders")
	{
		orders.GET("/", cfg.OrderHandler.GetOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
		orders.GET("/customer/:id", cfg.OrderHandler.GetOrdersByCustomerID)
		orders.GET("/product/:id", cfg.OrderHandler.GetOrdersByProductID)
		orders.POST("/createOrder/:id", cfg.OrderHandler.CreateOrder)
		orders.PUT("/updateOrder/:id", cfg.OrderHandler.UpdateOrder)
		orders.DELETE("/delete/:id", cfg.OrderHandler.DeleteOrder)
	}

	return router
}
