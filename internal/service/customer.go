package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
)

type CustomerService struct {
	log  *zap.Logger
	repo repository.CustomerRepository
}

func newCustomerService(repo repository.CustomerRepository, log *zap.Logger) *CustomerService {
	return &CustomerService{
		log:  log,
		repo: repo,
	}
}

func (s *CustomerService) Create(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	return s.repo.Create(ctx, model.Customer{
		CustomerUid:   uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
	})
}

func (s *CustomerService) Get(ctx context.Context, customerUid string) (model.Customer, error) {
	return s.repo.GetByUid(ctx, customerUid)
}

func (s *CustomerService) List(ctx context.Context, f model.CustomerFilter) (model.ListCustomers, error) {
	return s.repo.List(ctx, f)
}

func (s *CustomerService) Update(ctx context.Context, customerUid string, req model.UpdateCustomerRequest) (model.Customer, error) {
	return s.repo.Update(ctx, customerUid, req)
}

func (s *CustomerService) Delete(ctx context.Context, customerUid string) error {
	return s.repo.Delete(ctx, customerUid)
}
