package app

import (
	"gorm.io/gorm"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/services"
)

type Services struct {
	Customer services.CustomerService
	Product  services.ProductService
	Order    services.OrderService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Customer: services.NewCustomerService(db, log, r.Customer),
		Product:  services.NewProductService(db, log, r.Product),
		Order:    services.NewOrderService(db, log, r.Order, r.Customer, r.Product),
	}
}
