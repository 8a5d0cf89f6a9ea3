package repository

import (
	"context"

	"gorm.io/gorm"

	"pharmatrace/internal/model"
)

// RegistrationRepository defines persistence operations for signup requests.
type RegistrationRepository interface {
	Create(ctx context.Context, req *model.RegistrationRequest) error
	FindByWallet(ctx context.Context, wallet string) (*model.RegistrationRequest, error)
	ListByStatus(ctx context.Context, status model.RegistrationStatus) ([]model.RegistrationRequest, error)
	// TransitionStatus moves a wallet's row from one status to another in a single conditional update and
	// reports whether a row matched.
	TransitionStatus(ctx context.Context, wallet string, from, to model.RegistrationStatus) (bool, error)
	// DeleteWithStatus removes a wallet's row only if it is in the given status.
	DeleteWithStatus(ctx context.Context, wallet string, status model.RegistrationStatus) (bool, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create inserts a new request. A second row for the same wallet fails with gorm.ErrDuplicatedKey.
func (r *registrationRepository) Create(ctx context.Context, req *model.RegistrationRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// FindByWallet finds the request of a wallet, or gorm.ErrRecordNotFound.
func (r *registrationRepository) FindByWallet(ctx context.Context, wallet string) (*model.RegistrationRequest, error) {
	var req model.RegistrationRequest
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByStatus lists requests in a status, oldest first.
func (r *registrationRepository) ListByStatus(ctx context.Context, status model.RegistrationStatus) ([]model.RegistrationRequest, error) {
	reqs := make([]model.RegistrationRequest, 0)
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *registrationRepository) TransitionStatus(ctx context.Context, wallet string, from, to model.RegistrationStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.RegistrationRequest{}).
		Where("wallet_address = ? AND status = ?", wallet, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *registrationRepository) DeleteWithStatus(ctx context.Context, wallet string, status model.RegistrationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("wallet_address = ? AND status = ?", wallet, status).
		Delete(&model.RegistrationRequest{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
