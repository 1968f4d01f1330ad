package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/repos"
	"github.com/stackmart/marketplace-backend/internal/types"

	apperrors "github.com/stackmart/marketplace-backend/internal/pkg/errors"
)

// CustomerInput carries the mutable customer fields accepted on create and
// update.
type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*types.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, in CustomerInput) (*types.Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*types.Customer, error)
	GetCustomers(ctx context.Context) ([]*types.Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{db: db, log: serviceLog, customerRepo: customerRepo}
}

func (cs *customerService) CreateCustomer(ctx context.Context, in CustomerInput) (*types.Customer, error) {
	customer := &types.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Age:       in.Age,
	}
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.customerRepo.GetByEmail(ctx, tx, in.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflictf("email already taken")
		}
		return cs.customerRepo.Create(ctx, tx, customer)
	})
	if err != nil {
		return nil, err
	}
	cs.log.Info("Customer created", "customer_id", customer.ID)
	return customer, nil
}

// UpdateCustomer overwrites every mutable field. An email owned by a
// different customer is a conflict; reusing the customer's own email is fine.
func (cs *customerService) UpdateCustomer(ctx context.Context, customerID int64, in CustomerInput) (*types.Customer, error) {
	var updated *types.Customer
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := cs.customerRepo.GetByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if existing == nil {
			return apperrors.NotFoundf("customer with id %d doesn't exist", customerID)
		}
		byEmail, err := cs.customerRepo.GetByEmail(ctx, tx, in.Email)
		if err != nil {
			return err
		}
		if byEmail != nil && byEmail.ID != customerID {
			return apperrors.Conflictf("email already taken")
		}
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		existing.Email = in.Email
		existing.Age = in.Age
		if err := cs.customerRepo.Update(ctx, tx, existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *customerService) GetCustomer(ctx context.Context, customerID int64) (*types.Customer, error) {
	customer, err := cs.customerRepo.GetByID(ctx, nil, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFoundf("customer with id %d doesn't exist", customerID)
	}
	return customer, nil
}

func (cs *customerService) GetCustomers(ctx context.Context) ([]*types.Customer, error) {
	return cs.customerRepo.GetAll(ctx, nil)
}

func (cs *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := cs.customerRepo.ExistsByID(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFoundf("customer with id %d doesn't exist", customerID)
		}
		return cs.customerRepo.DeleteByID(ctx, tx, customerID)
	})
}
