package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/repos"
	"github.com/stackmart/marketplace-backend/internal/types"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID int64, productIDs []int64) (*types.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, productIDs []int64) (*types.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*types.Order, error)
	GetOrders(ctx context.Context) ([]*types.Order, error)
	GetOrdersByCustomerID(ctx context.Context, customerID int64) ([]*types.Order, error)
	GetOrdersByProductID(ctx context.Context, productID int64) ([]*types.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	orderRepo    repos.OrderRepo
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:           db,
		log:          serviceLog,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateOrder builds a new order for an existing customer from whatever
// subset of the requested product ids resolves. Ids that resolve to nothing
// are dropped. The total is the sum of the resolved prices, zero when the set
// is empty.
func (os *orderService) CreateOrder(ctx context.Context, customerID int64, productIDs []int64) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := os.customerRepo.GetByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperrors.NotFoundf("customer not found with id %d", customerID)
		}
		products, err := os.productRepo.GetByIDs(ctx, tx, productIDs)
		if err != nil {
			return err
		}
		newOrder := &types.Order{
			Date:       time.Now(),
			CustomerID: customer.ID,
			Products:   products,
		}
		newOrder.RecomputeTotal()
		if err := os.orderRepo.Create(ctx, tx, newOrder); err != nil {
			return err
		}
		newOrder.Customer = customer
		order = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}
	os.log.Info("Order created", "order_id", order.ID, "customer_id", customerID, "total_amount", order.TotalAmount)
	return order, nil
}

// UpdateOrder appends the resolved products that are not already part of the
// order. Re-adding a product is a no-op, so the total is never counted twice
// and never decreases.
func (os *orderService) UpdateOrder(ctx context.Context, orderID int64, productIDs []int64) (*types.Order, error) {
	var order *types.Order
	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := os.orderRepo.GetByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NotFoundf("order not found with id %d", orderID)
		}
		products, err := os.productRepo.GetByIDs(ctx, tx, productIDs)
		if err != nil {
			return err
		}
		for _, product := range products {
			if !existing.HasProduct(product.ID) {
				existing.Products = append(existing.Products, product)
			}
		}
		existing.RecomputeTotal()
		if err := os.orderRepo.Update(ctx, tx, existing); err != nil {
			return err
		}
		order = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (os *orderService) GetOrder(ctx context.Context, orderID int64) (*types.Order, error) {
	order, err := os.orderRepo.GetByID(ctx, nil, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NotFoundf("order not found with id %d", orderID)
	}
	return order, nil
}

func (os *orderService) GetOrders(ctx context.Context) ([]*types.Order, error) {
	return os.orderRepo.GetAll(ctx, nil)
}

// GetOrdersByCustomerID treats an empty result as not found. That is the
// observed contract, not the usual empty-list success.
func (os *orderService) GetOrdersByCustomerID(ctx context.Context, customerID int64) ([]*types.Order, error) {
	orders, err := os.orderRepo.GetByCustomerID(ctx, nil, customerID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFoundf("no orders found for customer with id %d", customerID)
	}
	return orders, nil
}

func (os *orderService) GetOrdersByProductID(ctx context.Context, productID int64) ([]*types.Order, error) {
	orders, err := os.orderRepo.GetByProductID(ctx, nil, productID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperrors.NotFoundf("no orders found for product with id %d", productID)
	}
	return orders, nil
}

func (os *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	return os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := os.orderRepo.ExistsByID(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFoundf("order not found with id %d", orderID)
		}
		return os.orderRepo.DeleteByID(ctx, tx, orderID)
	})
}
