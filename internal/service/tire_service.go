package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TireService struct {
	tireRepo TireStore
}

func NewTireService(tireRepo TireStore) *TireService {
	return &TireService{tireRepo: tireRepo}
}

type TireInput struct {
	FireID        int             `json:"fireId"`
	RetreadNumber int             `json:"retreadNumber"`
	GrooveDepth   float64         `json:"grooveDepth"`
	PurchaseDate  *time.Time      `json:"purchaseDate"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Measure       string          `json:"measure"`
	Value         decimal.Decimal `json:"value"`
	CurrentKm     float64         `json:"currentKm"`
	Status        *string         `json:"status"`
	Pressure      *float64        `json:"pressure"`
}

func (in TireInput) apply(tire *model.Tire) error {
	switch {
	case in.FireID <= 0:
		return invalidf("fireId must be a positive number")
	case in.RetreadNumber < 0:
		return invalidf("retreadNumber must not be negative")
	case in.GrooveDepth < 0:
		return invalidf("grooveDepth must not be negative")
	case !validMileage(in.CurrentKm):
		return invalidf("currentKm must be a non-negative number")
	case in.Value.IsNegative():
		return invalidf("value must not be negative")
	}

	tire.FireID = in.FireID
	tire.RetreadNumber = in.RetreadNumber
	tire.GrooveDepth = in.GrooveDepth
	tire.PurchaseDate = in.PurchaseDate
	tire.Brand = in.Brand
	tire.Model = in.Model
	tire.Measure = in.Measure
	tire.Value = in.Value
	tire.CurrentKm = in.CurrentKm
	tire.Status = in.Status
	tire.Pressure = in.Pressure
	return nil
}

func (s *TireService) Create(ctx context.Context, input TireInput) (*model.Tire, error) {
	tire := &model.Tire{}
	if err := input.apply(tire); err != nil {
		return nil, err
	}
	if err := s.tireRepo.Create(ctx, tire); err != nil {
		return nil, storeError(err, "tire")
	}
	return tire, nil
}

func (s *TireService) List(ctx context.Context) ([]model.Tire, error) {
	return s.tireRepo.List(ctx)
}

func (s *TireService) Get(ctx context.Context, id uuid.UUID) (*model.Tire, error) {
	tire, err := s.tireRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "tire")
	}
	return tire, nil
}

func (s *TireService) Update(ctx context.Context, id uuid.UUID, input TireInput) (*model.Tire, error) {
	tire, err := s.tireRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "tire")
	}
	if err := input.apply(tire); err != nil {
		return nil, err
	}
	if err := s.tireRepo.Update(ctx, tire); err != nil {
		return nil, storeError(err, "tire")
	}
	return tire, nil
}

func (s *TireService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.tireRepo.Delete(ctx, id), "tire")
}

type VehicleTireService struct {
	vehicleTireRepo VehicleTireStore
	vehicleRepo     VehicleStore
	tireRepo        TireStore
}

func NewVehicleTireService(vehicleTireRepo VehicleTireStore, vehicleRepo VehicleStore, tireRepo TireStore) *VehicleTireService {
	return &VehicleTireService{
		vehicleTireRepo: vehicleTireRepo,
		vehicleRepo:     vehicleRepo,
		tireRepo:        tireRepo,
	}
}

type VehicleTireInput struct {
	VehicleID    uuid.UUID  `json:"vehicleId"`
	TireID       uuid.UUID  `json:"tireId"`
	AxlePosition string     `json:"axlePosition"`
	MountKm      *float64   `json:"mountKm"`
	MountDate    *time.Time `json:"mountDate"`
	UnmountDate  *time.Time `json:"unmountDate"`
	UnmountKm    *float64   `json:"unmountKm"`
	Observation  *string    `json:"observation"`
}

func (s *VehicleTireService) apply(ctx context.Context, in VehicleTireInput, vt *model.VehicleTire) error {
	axle := strings.ToUpper(strings.TrimSpace(in.AxlePosition))
	switch {
	case in.VehicleID == uuid.Nil:
		return invalidf("vehicleId is required")
	case in.TireID == uuid.Nil:
		return invalidf("tireId is required")
	case axle == "":
		return invalidf("axlePosition is required")
	case in.MountKm != nil && !validMileage(*in.MountKm):
		return invalidf("mountKm must be a non-negative number")
	case in.UnmountKm != nil && !validMileage(*in.UnmountKm):
		return invalidf("unmountKm must be a non-negative number")
	case in.MountKm != nil && in.UnmountKm != nil && *in.UnmountKm < *in.MountKm:
		return invalidf("unmountKm must not be lower than mountKm")
	case in.MountDate != nil && in.UnmountDate != nil && in.UnmountDate.Before(*in.MountDate):
		return invalidf("unmountDate must not be before mountDate")
	}

	if _, err := requireVehicle(ctx, s.vehicleRepo, in.VehicleID); err != nil {
		return err
	}
	if _, err := s.tireRepo.GetByID(ctx, in.TireID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidf("tire %s does not exist", in.TireID)
		}
		return err
	}

	vt.VehicleID = in.VehicleID
	vt.TireID = in.TireID
	vt.AxlePosition = axle
	vt.MountKm = in.MountKm
	vt.MountDate = in.MountDate
	vt.UnmountDate = in.UnmountDate
	vt.UnmountKm = in.UnmountKm
	vt.Observation = in.Observation
	vt.Vehicle = nil
	vt.Tire = nil
	return nil
}

func (s *VehicleTireService) Create(ctx context.Context, input VehicleTireInput) (*model.VehicleTire, error) {
	vt := &model.VehicleTire{}
	if err := s.apply(ctx, input, vt); err != nil {
		return nil, err
	}
	if err := s.vehicleTireRepo.Create(ctx, vt); err != nil {
		return nil, storeError(err, "vehicle tire")
	}
	return vt, nil
}

// List returns allocations with vehicle and tire loaded, optionally limited
// to one vehicle.
func (s *VehicleTireService) List(ctx context.Context, vehicleID *uuid.UUID) ([]model.VehicleTire, error) {
	return s.vehicleTireRepo.List(ctx, vehicleID)
}

func (s *VehicleTireService) Get(ctx context.Context, id uuid.UUID) (*model.VehicleTire, error) {
	vt, err := s.vehicleTireRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "vehicle tire")
	}
	return vt, nil
}

func (s *VehicleTireService) Update(ctx context.Context, id uuid.UUID, input VehicleTireInput) (*model.VehicleTire, error) {
	vt, err := s.vehicleTireRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "vehicle tire")
	}
	if err := s.apply(ctx, input, vt); err != nil {
		return nil, err
	}
	if err := s.vehicleTireRepo.Update(ctx, vt); err != nil {
		return nil, storeError(err, "vehicle tire")
	}
	return vt, nil
}

func (s *VehicleTireService) Delete(ctx context.Context, id uuid.UUID) error {
	return storeError(s.vehicleTireRepo.Delete(ctx, id), "vehicle tire")
}
