package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type DriverService struct {
	driverRepo DriverStore
}

func NewDriverService(driverRepo DriverStore) *DriverService {
	return &DriverService{driverRepo: driverRepo}
}

type DriverInput struct {
	Name              string     `json:"name"`
	CPF               string     `json:"cpf"`
	CNH               *string    `json:"cnh"`
	CNHCategory       *string    `json:"cnhCategory"`
	CNHExpiration     *time.Time `json:"cnhExpiration"`
	Phone             *string    `json:"phone"`
	Address           *string    `json:"address"`
	Position          *string    `json:"position"`
	ToxicologicalDate *time.Time `json:"toxicologicalDate"`
}

func (in DriverInput) apply(driver *model.Driver) error {
	name := strings.TrimSpace(in.Name)
	cpf := strings.TrimSpace(in.CPF)
	if name == "" {
		return invalidf("name is required")
	}
	if cpf == "" {
		return invalidf("cpf is required")
	}

	driver.Name = name
	driver.CPF = cpf
	driver.CNH = in.CNH
	driver.CNHCategory = in.CNHCategory
	driver.CNHExpiration = in.CNHExpiration
	driver.Phone = in.Phone
	driver.Address = in.Address
	driver.Position = in.Position
	driver.ToxicologicalDate = in.ToxicologicalDate
	return nil
}

func (s *DriverService) Create(ctx context.Context, input DriverInput) (*model.Driver, error) {
	driver := &model.Driver{}
	if err := input.apply(driver); err != nil {
		return nil, err
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, storeError(err, "driver")
	}
	return driver, nil
}

func (s *DriverService) List(ctx context.Context) ([]model.Driver, error) {
	return s.driverRepo.List(ctx)
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "driver")
	}
	return driver, nil
}

func (s *DriverService) Update(ctx context.Context, id uuid.UUID, input DriverInput) (*model.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "driver")
	}
	if err := input.apply(driver); err != nil {
		return nil, err
	}
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, storeError(err, "driver")
	}
	return driver, nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.driverRepo.Delete(ctx, id), "driver")
}
