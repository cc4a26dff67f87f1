package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
	"fleet-service/internal/utils"
)

type VehicleService struct {
	vehicleRepo VehicleStore
	log         zerolog.Logger
}

func NewVehicleService(vehicleRepo VehicleStore, log zerolog.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		log:         log,
	}
}

type VehicleInput struct {
	Plate             string  `json:"plate"`
	Model             string  `json:"model"`
	Type              string  `json:"type"`
	ManufacturingYear *int    `json:"manufacturingYear"`
	ModelYear         *int    `json:"modelYear"`
	Observation       *string `json:"observation"`
	Color             *string `json:"color"`
	FuelType          *string `json:"fuelType"`
	Mileage           float64 `json:"mileage"`
	Utility           *string `json:"utility"`
	Classification    *int    `json:"classification"`
	Registration      string  `json:"registration"`
	Chassis           *string `json:"chassi"`
	Fleet             *int    `json:"fleet"`
	Renavam           *string `json:"renavam"`
}

func (in VehicleInput) apply(vehicle *model.Vehicle) error {
	plate := utils.NormalizePlate(in.Plate)
	if plate == "" {
		return invalidf("plate is required")
	}
	if !validMileage(in.Mileage) {
		return invalidf("mileage must be a non-negative number")
	}

	vehicle.Plate = plate
	vehicle.Model = in.Model
	vehicle.Type = in.Type
	vehicle.ManufacturingYear = in.ManufacturingYear
	vehicle.ModelYear = in.ModelYear
	vehicle.Observation = in.Observation
	vehicle.Color = in.Color
	vehicle.FuelType = in.FuelType
	vehicle.Mileage = in.Mileage
	vehicle.Utility = in.Utility
	vehicle.Classification = in.Classification
	vehicle.Registration = in.Registration
	vehicle.Chassis = in.Chassis
	vehicle.Fleet = in.Fleet
	vehicle.Renavam = in.Renavam
	return nil
}

// UpdateVehicleInput carries the fields of a partial vehicle update.
// Omitted fields keep their stored value.
type UpdateVehicleInput struct {
	Plate             *string  `json:"plate"`
	Model             *string  `json:"model"`
	Type              *string  `json:"type"`
	ManufacturingYear *int     `json:"manufacturingYear"`
	ModelYear         *int     `json:"modelYear"`
	Observation       *string  `json:"observation"`
	Color             *string  `json:"color"`
	FuelType          *string  `json:"fuelType"`
	Mileage           *float64 `json:"mileage"`
	Utility           *string  `json:"utility"`
	Classification    *int     `json:"classification"`
	Registration      *string  `json:"registration"`
	Chassis           *string  `json:"chassi"`
	Fleet             *int     `json:"fleet"`
	Renavam           *string  `json:"renavam"`
}

func (in UpdateVehicleInput) merge(v *model.Vehicle) VehicleInput {
	merged := VehicleInput{
		Plate:             v.Plate,
		Model:             v.Model,
		Type:              v.Type,
		ManufacturingYear: v.ManufacturingYear,
		ModelYear:         v.ModelYear,
		Observation:       v.Observation,
		Color:             v.Color,
		FuelType:          v.FuelType,
		Mileage:           v.Mileage,
		Utility:           v.Utility,
		Classification:    v.Classification,
		Registration:      v.Registration,
		Chassis:           v.Chassis,
		Fleet:             v.Fleet,
		Renavam:           v.Renavam,
	}
	if in.Plate != nil {
		merged.Plate = *in.Plate
	}
	if in.Model != nil {
		merged.Model = *in.Model
	}
	if in.Type != nil {
		merged.Type = *in.Type
	}
	if in.ManufacturingYear != nil {
		merged.ManufacturingYear = in.ManufacturingYear
	}
	if in.ModelYear != nil {
		merged.ModelYear = in.ModelYear
	}
	if in.Observation != nil {
		merged.Observation = in.Observation
	}
	if in.Color != nil {
		merged.Color = in.Color
	}
	if in.FuelType != nil {
		merged.FuelType = in.FuelType
	}
	if in.Mileage != nil {
		merged.Mileage = *in.Mileage
	}
	if in.Utility != nil {
		merged.Utility = in.Utility
	}
	if in.Classification != nil {
		merged.Classification = in.Classification
	}
	if in.Registration != nil {
		merged.Registration = *in.Registration
	}
	if in.Chassis != nil {
		merged.Chassis = in.Chassis
	}
	if in.Fleet != nil {
		merged.Fleet = in.Fleet
	}
	if in.Renavam != nil {
		merged.Renavam = in.Renavam
	}
	return merged
}

func validMileage(mileage float64) bool {
	return mileage >= 0 && !math.IsInf(mileage, 0) && !math.IsNaN(mileage)
}

func (s *VehicleService) Create(ctx context.Context, input VehicleInput) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{}
	if err := input.apply(vehicle); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, storeError(err, "vehicle")
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *VehicleService) ListPlates(ctx context.Context) ([]string, error) {
	return s.vehicleRepo.ListPlates(ctx)
}

func (s *VehicleService) Get(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "vehicle")
	}
	return vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id uuid.UUID, input UpdateVehicleInput) (*model.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "vehicle")
	}
	if err := input.merge(vehicle).apply(vehicle); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, storeError(err, "vehicle")
	}
	return vehicle, nil
}

// Delete removes the vehicle. Maintenance and fuel lines that reference
// its plate are kept and become orphaned. A vehicle with alerts is a
// conflict; its alerts have to be deleted first.
func (s *VehicleService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.vehicleRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrVehicleHasAlerts) {
		return fmt.Errorf("%w: vehicle has alerts", ErrConflict)
	}
	return storeError(err, "vehicle")
}

func (s *VehicleService) UpdateMileage(ctx context.Context, id uuid.UUID, mileage float64) (*model.Vehicle, error) {
	if !validMileage(mileage) {
		return nil, invalidf("mileage must be a non-negative number")
	}
	vehicle, err := s.vehicleRepo.UpdateMileage(ctx, id, mileage)
	if err != nil {
		return nil, storeError(err, "vehicle")
	}
	return vehicle, nil
}

func (s *VehicleService) UpdateMileageByPlate(ctx context.Context, plate string, mileage float64) (*model.Vehicle, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, invalidf("plate is required")
	}
	if !validMileage(mileage) {
		return nil, invalidf("mileage must be a non-negative number")
	}
	vehicle, err := s.vehicleRepo.UpdateMileageByPlate(ctx, plate, mileage)
	if err != nil {
		return nil, storeError(err, "vehicle")
	}
	return vehicle, nil
}

type MileageUpdate struct {
	Plate   string  `json:"plate"`
	Mileage float64 `json:"mileage"`
}

type MileageUpdateResult struct {
	Plate   string         `json:"plate"`
	Success bool           `json:"success"`
	Vehicle *model.Vehicle `json:"vehicle,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// UpdateMileageBatch applies every update independently. A failing item is
// reported in its result entry and never aborts the rest of the batch.
func (s *VehicleService) UpdateMileageBatch(ctx context.Context, updates []MileageUpdate) []MileageUpdateResult {
	results := make([]MileageUpdateResult, 0, len(updates))

	for _, update := range updates {
		result := MileageUpdateResult{Plate: update.Plate}

		vehicle, err := s.UpdateMileageByPlate(ctx, update.Plate, update.Mileage)
		switch {
		case err == nil:
			result.Success = true
			result.Vehicle = vehicle
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
			result.Error = err.Error()
		default:
			result.Error = "update failed"
		}

		if err != nil {
			s.log.Warn().Err(err).Str("plate", update.Plate).Float64("mileage", update.Mileage).Msg("batch mileage update failed")
		}
		results = append(results, result)
	}

	return results
}

// requireVehicle resolves a vehicle referenced from another record. A
// missing vehicle is a validation failure of that record, not a 404.
func requireVehicle(ctx context.Context, vehicles VehicleStore, id uuid.UUID) (*model.Vehicle, error) {
	vehicle, err := vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidf("vehicle %s does not exist", id)
		}
		return nil, err
	}
	return vehicle, nil
}
