package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"pharmatrace/internal/cache"
	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/model"
	"pharmatrace/internal/repository"
)

const (
	ppbCacheTTL = 10 * time.Minute
	ppbListKey  = "ppb:all"
)

// PPBService serves the regulator license registry mirror.
type PPBService interface {
	Get(ctx context.Context, licenseNumber string) (*model.PPBRecord, error)
	List(ctx context.Context) ([]model.PPBRecord, error)
	// SeedIfEmpty writes the default records only when the mirror is empty and returns how many it wrote.
	SeedIfEmpty(ctx context.Context) (int, error)
	// Seed upserts the default records unconditionally.
	Seed(ctx context.Context) (int, error)
}

type ppbService struct {
	repo  repository.PPBRepository
	cache *cache.Client
}

// NewPPBService creates a new PPB registry service. cache may be nil.
func NewPPBService(repo repository.PPBRepository, cache *cache.Client) PPBService {
	return &ppbService{
		repo:  repo,
		cache: cache,
	}
}

func (s *ppbService) cacheKey(licenseNumber string) string {
	return fmt.Sprintf("ppb:license:%s", licenseNumber)
}

// Get looks a license up, reading through the cache.
func (s *ppbService) Get(ctx context.Context, licenseNumber string) (*model.PPBRecord, error) {
	licenseNumber = strings.TrimSpace(licenseNumber)
	if licenseNumber == "" {
		return nil, apperrors.NewValidationError("licenseNumber is required")
	}

	var cached model.PPBRecord
	if s.cache.GetJSON(ctx, s.cacheKey(licenseNumber), &cached) {
		return &cached, nil
	}

	record, err := s.repo.FindByLicense(ctx, licenseNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLicenseNotFound
		}
		return nil, fmt.Errorf("find license: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(licenseNumber), record, ppbCacheTTL)
	return record, nil
}

// List returns every record.
func (s *ppbService) List(ctx context.Context) ([]model.PPBRecord, error) {
	var cached []model.PPBRecord
	if s.cache.GetJSON(ctx, ppbListKey, &cached) && cached != nil {
		return cached, nil
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}

	s.cache.SetJSON(ctx, ppbListKey, records, ppbCacheTTL)
	return records, nil
}

func (s *ppbService) SeedIfEmpty(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count licenses: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	return s.Seed(ctx)
}

func (s *ppbService) Seed(ctx context.Context) (int, error) {
	records := DefaultPPBRecords()
	if err := s.repo.Upsert(ctx, records); err != nil {
		return 0, fmt.Errorf("seed licenses: %w", err)
	}

	keys := []string{ppbListKey}
	for _, r := range records {
		keys = append(keys, s.cacheKey(r.LicenseNumber))
	}
	s.cache.Delete(ctx, keys...)

	log.Infof("seeded %d PPB records", len(records))
	return len(records), nil
}

var ppbSeedNames = []string{
	"Acme Pharma", "Nairobi Generics", "Rift Valley Labs", "Coast Distributors", "Lakeside Pharmacy",
	"Highland Medics", "Savanna Biotech", "Equator Supplies", "Kilima Chemists", "Mombasa Wholesale",
	"Tana Therapeutics", "Athi River Pharma", "Kisumu Health Stores", "Nakuru Dispensary", "Meru Pharmaceuticals",
	"Eldoret Logistics", "Thika Drug House", "Nyeri Care Pharmacy", "Malindi Medical", "Machakos Remedies",
}

// DefaultPPBRecords returns the synthetic registry rows: PPB-1001 through PPB-1020, roles cycling
// manufacturer, distributor, pharmacy.
func DefaultPPBRecords() []model.PPBRecord {
	records := make([]model.PPBRecord, len(ppbSeedNames))
	for i, name := range ppbSeedNames {
		slug := strings.ToLower(strings.ReplaceAll(name, " ", ""))
		records[i] = model.PPBRecord{
			Name:          name,
			Email:         fmt.Sprintf("contact@%s.example", slug),
			LicenseNumber: fmt.Sprintf("PPB-%d", 1001+i),
			Role:          model.UserRole(i%3 + 1),
		}
	}
	return records
}
