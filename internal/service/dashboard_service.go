package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fleet-service/internal/repository"
	"fleet-service/internal/utils"
)

type TotalsKind string

const (
	TotalsKindMaintenance TotalsKind = "maintenance"
	TotalsKindFuel        TotalsKind = "fuel"
)

// MonthlyTotals maps a "M/YYYY" month key to the summed total cost of
// that month.
type MonthlyTotals map[string]decimal.Decimal

// MonthTotal is one entry of a chronologically ordered monthly series.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type VehicleTotals struct {
	Plate       string        `json:"plate"`
	Maintenance MonthlyTotals `json:"maintenance"`
	Fuel        MonthlyTotals `json:"fuel"`
}

type costPointSource interface {
	ListCostPoints(ctx context.Context, plate *string) ([]repository.CostPoint, error)
}

type DashboardService struct {
	maintenanceRepo costPointSource
	fuelRepo        costPointSource
	cache           ObjectCache
	cacheTTL        time.Duration
	log             zerolog.Logger
}

func NewDashboardService(maintenanceRepo MaintenanceStore, fuelRepo FuelStore, cache ObjectCache, cacheTTL time.Duration, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		maintenanceRepo: maintenanceRepo,
		fuelRepo:        fuelRepo,
		cache:           cache,
		cacheTTL:        cacheTTL,
		log:             log,
	}
}

// MonthlyTotals sums total cost per calendar month over every maintenance
// or fuel line. Results are served from the cache when one is configured.
func (s *DashboardService) MonthlyTotals(ctx context.Context, kind TotalsKind) (MonthlyTotals, error) {
	source, err := s.source(kind)
	if err != nil {
		return nil, err
	}

	key := totalsCacheKey(kind)
	if s.cache != nil {
		var cached MonthlyTotals
		found, err := s.cache.GetObject(ctx, key, &cached)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache read failed")
		} else if found {
			return cached, nil
		}
	}

	points, err := source.ListCostPoints(ctx, nil)
	if err != nil {
		return nil, err
	}
	totals := SumByMonth(points)

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.SetObject(ctx, key, totals, s.cacheTTL); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("dashboard cache write failed")
		}
	}
	return totals, nil
}

// MonthlySeries returns the same sums as MonthlyTotals ordered from the
// oldest month to the newest.
func (s *DashboardService) MonthlySeries(ctx context.Context, kind TotalsKind) ([]MonthTotal, error) {
	totals, err := s.MonthlyTotals(ctx, kind)
	if err != nil {
		return nil, err
	}
	return totals.Series(), nil
}

// Series orders the totals chronologically.
func (t MonthlyTotals) Series() []MonthTotal {
	keys := make([]string, 0, len(t))
	for key := range t {
		keys = append(keys, key)
	}
	utils.SortMonthKeys(keys)

	series := make([]MonthTotal, 0, len(keys))
	for _, key := range keys {
		series = append(series, MonthTotal{Month: key, Total: t[key]})
	}
	return series
}

// VehicleTotals computes both monthly series for a single plate.
func (s *DashboardService) VehicleTotals(ctx context.Context, plate string) (*VehicleTotals, error) {
	plate = utils.NormalizePlate(plate)
	if plate == "" {
		return nil, invalidf("plate is required")
	}

	maintenance, err := s.maintenanceRepo.ListCostPoints(ctx, &plate)
	if err != nil {
		return nil, err
	}
	fuel, err := s.fuelRepo.ListCostPoints(ctx, &plate)
	if err != nil {
		return nil, err
	}

	return &VehicleTotals{
		Plate:       plate,
		Maintenance: SumByMonth(maintenance),
		Fuel:        SumByMonth(fuel),
	}, nil
}

func (s *DashboardService) source(kind TotalsKind) (costPointSource, error) {
	switch kind {
	case TotalsKindMaintenance:
		return s.maintenanceRepo, nil
	case TotalsKindFuel:
		return s.fuelRepo, nil
	default:
		return nil, invalidf("unknown totals kind %q", kind)
	}
}

// SumByMonth groups points by the UTC calendar month of their date.
func SumByMonth(points []repository.CostPoint) MonthlyTotals {
	totals := make(MonthlyTotals)
	for _, p := range points {
		key := utils.MonthKey(p.Date.UTC())
		totals[key] = totals[key].Add(p.TotalCost)
	}
	return totals
}

func totalsCacheKey(kind TotalsKind) string {
	return "dashboard:" + string(kind)
}

func invalidateTotals(ctx context.Context, cache ObjectCache, log zerolog.Logger, kind TotalsKind) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, totalsCacheKey(kind)); err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("dashboard cache invalidation failed")
	}
}
