package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharmatrace/internal/model"
)

// PPBRepository defines read access to the regulator registry mirror, plus seeding.
type PPBRepository interface {
	FindByLicense(ctx context.Context, licenseNumber string) (*model.PPBRecord, error)
	List(ctx context.Context) ([]model.PPBRecord, error)
	Count(ctx context.Context) (int64, error)
	// Upsert inserts records, overwriting existing rows with the same license number.
	Upsert(ctx context.Context, records []model.PPBRecord) error
}

type ppbRepository struct {
	db *gorm.DB
}

// NewPPBRepository creates a new PPB registry repository.
func NewPPBRepository(db *gorm.DB) PPBRepository {
	return &ppbRepository{db: db}
}

// FindByLicense finds a record by license number, or gorm.ErrRecordNotFound.
func (r *ppbRepository) FindByLicense(ctx context.Context, licenseNumber string) (*model.PPBRecord, error) {
	var record model.PPBRecord
	if err := r.db.WithContext(ctx).Where("license_number = ?", licenseNumber).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List lists all records ordered by id.
func (r *ppbRepository) List(ctx context.Context) ([]model.PPBRecord, error) {
	records := make([]model.PPBRecord, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the number of records.
func (r *ppbRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.PPBRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ppbRepository) Upsert(ctx context.Context, records []model.PPBRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "license_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "role"}),
	}).CreateInBatches(records, 100).Error
}
