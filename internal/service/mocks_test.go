package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fleet-service/internal/model"
	"fleet-service/internal/repository"
)

type MockAlertStore struct {
	mock.Mock
}

func (m *MockAlertStore) Create(ctx context.Context, alert *model.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Alert), args.Error(1)
}

func (m *MockAlertStore) List(ctx context.Context, filter repository.AlertListFilter) ([]model.Alert, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

func (m *MockAlertStore) Update(ctx context.Context, alert *model.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockAlertStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAlertStore) Complete(ctx context.Context, id uuid.UUID, params repository.CompleteAlertParams) (*model.Alert, *model.Alert, error) {
	args := m.Called(ctx, id, params)
	var completed, successor *model.Alert
	if args.Get(0) != nil {
		completed = args.Get(0).(*model.Alert)
	}
	if args.Get(1) != nil {
		successor = args.Get(1).(*model.Alert)
	}
	return completed, successor, args.Error(2)
}

func (m *MockAlertStore) ListPendingWithVehicle(ctx context.Context) ([]model.Alert, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Alert), args.Error(1)
}

type MockVehicleStore struct {
	mock.Mock
}

func (m *MockVehicleStore) Create(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) GetByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) ListPlates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockVehicleStore) Update(ctx context.Context, vehicle *model.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleStore) UpdateMileage(ctx context.Context, id uuid.UUID, mileage float64) (*model.Vehicle, error) {
	args := m.Called(ctx, id, mileage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleStore) UpdateMileageByPlate(ctx context.Context, plate string, mileage float64) (*model.Vehicle, error) {
	args := m.Called(ctx, plate, mileage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

// memoryCache is an in-process ObjectCache that keeps values as-is.
type memoryCache struct {
	values  map[string]interface{}
	deletes []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string]interface{})}
}

func (c *memoryCache) GetObject(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	if totals, ok := dest.(*MonthlyTotals); ok {
		*totals = v.(MonthlyTotals)
	}
	return true, nil
}

func (c *memoryCache) SetObject(_ context.Context, key string, obj interface{}, _ time.Duration) error {
	c.values[key] = obj
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
		c.deletes = append(c.deletes, k)
	}
	return nil
}
