package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/storage"
)

type VehicleService struct {
	log   *zap.Logger
	repo  repository.VehicleRepository
	store storage.Storage
}

func newVehicleService(repo repository.VehicleRepository, store storage.Storage, log *zap.Logger) *VehicleService {
	return &VehicleService{
		log:   log,
		repo:  repo,
		store: store,
	}
}

func (s *VehicleService) Create(ctx context.Context, req model.CreateVehicleRequest) (model.Vehicle, error) {
	return s.repo.Create(ctx, model.Vehicle{
		VehicleUid:   uuid.NewString(),
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		PlateNumber:  req.PlateNumber,
		Category:     req.Category,
		Transmission: req.Transmission,
		Seats:        req.Seats,
		DailyRate:    req.DailyRate,
		Status:       model.VehicleStatusActive,
		IsAvailable:  true,
		Description:  req.Description,
	})
}

func (s *VehicleService) Get(ctx context.Context, vehicleUid string) (model.Vehicle, error) {
	v, err := s.repo.GetByUid(ctx, vehicleUid)
	if err != nil {
		return model.Vehicle{}, err
	}
	images, err := s.repo.ListImages(ctx, v.ID)
	if err != nil {
		return model.Vehicle{}, err
	}
	v.Images = images
	return v, nil
}

func (s *VehicleService) List(ctx context.Context, f model.VehicleFilter) (model.ListVehicles, error) {
	return s.repo.List(ctx, f)
}

func (s *VehicleService) Update(ctx context.Context, vehicleUid string, req model.UpdateVehicleRequest) (model.Vehicle, error) {
	return s.repo.Update(ctx, vehicleUid, req)
}

func (s *VehicleService) Delete(ctx context.Context, vehicleUid string) error {
	v, err := s.repo.GetByUid(ctx, vehicleUid)
	if err != nil {
		return err
	}
	images, err := s.repo.ListImages(ctx, v.ID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, vehicleUid); err != nil {
		return err
	}
	for _, img := range images {
		if err := s.store.Remove(img.Path); err != nil {
			s.log.Warn("remove image file", zap.String("path", img.Path), zap.Error(err))
		}
	}
	return nil
}

func (s *VehicleService) UploadImage(ctx context.Context, vehicleUid, filename string, data []byte, isPrimary bool) (model.VehicleImage, error) {
	v, err := s.repo.GetByUid(ctx, vehicleUid)
	if err != nil {
		return model.VehicleImage{}, err
	}
	path, err := s.store.Save(filename, data)
	if err != nil {
		return model.VehicleImage{}, err
	}
	img, err := s.repo.AddImage(ctx, model.VehicleImage{
		VehicleID: v.ID,
		Path:      path,
		IsPrimary: isPrimary,
	})
	if err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			s.log.Warn("remove orphan image file", zap.String("path", path), zap.Error(rmErr))
		}
		return model.VehicleImage{}, err
	}
	return img, nil
}

func (s *VehicleService) DeleteImage(ctx context.Context, vehicleUid string, imageID int) error {
	path, err := s.repo.DeleteImage(ctx, vehicleUid, imageID)
	if err != nil {
		return err
	}
	if err := s.store.Remove(path); err != nil {
		s.log.Warn("remove image file", zap.String("path", path), zap.Error(err))
	}
	return nil
}
