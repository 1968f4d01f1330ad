package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/stackmart/marketplace-backend/internal/http"
	"github.com/stackmart/marketplace-backend/internal/http/handlers"
	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
)

type Handlers struct {
	Customer *handlers.CustomerHandler
	Product  *handlers.ProductHandler
	Order    *handlers.OrderHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	handlers.RegisterValidations()
	return Handlers{
		Customer: handlers.NewCustomerHandler(log, services.Customer),
		Product:  handlers.NewProductHandler(log, services.Product),
		Order:    handlers.NewOrderHandler(log, services.Order),
	}
}

func wireRouter(cfg Config, h Handlers) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		ServiceName:     cfg.ServiceName,
		CustomerHandler: h.Customer,
		ProductHandler:  h.Product,
		OrderHandler:    h.Order,
	})
}
