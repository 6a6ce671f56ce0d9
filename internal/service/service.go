package service

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/contract"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/storage"
)

type Service struct {
	Auth     *AuthService
	Vehicle  *VehicleService
	Customer *CustomerService
	Booking  *BookingService
	Stats    *StatsService
}

func NewService(repo *repository.Repository, producer sarama.SyncProducer, store storage.Storage, cfg config.Config, log *zap.Logger) *Service {
	log = log.Named("service")
	enq := NewEnqueuer(producer)
	mailer := NewMailer(cfg.SMTP, log)
	return &Service{
		Auth:     newAuthService(repo.User, cfg.Auth, log),
		Vehicle:  newVehicleService(repo.Vehicle, store, log),
		Customer: newCustomerService(repo.Customer, log),
		Booking:  newBookingService(repo, enq, mailer, contract.NewRenderer(), cfg.Booking, log),
		Stats:    newStatsService(repo, log),
	}
}
