package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/model"
)

func TestDefaultPPBRecords(t *testing.T) {
	records := DefaultPPBRecords()
	require.Len(t, records, 20)

	seen := map[string]bool{}
	for _, r := range records {
		assert.True(t, r.Role.Valid(), r.LicenseNumber)
		assert.False(t, seen[r.LicenseNumber], "duplicate %s", r.LicenseNumber)
		seen[r.LicenseNumber] = true
	}
	assert.True(t, seen["PPB-1001"])
	assert.True(t, seen["PPB-1020"])
}

func TestPPBService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		license     string
		setupMocks  func(*MockPPBRepository)
		expectedErr error
	}{
		{
			name:    "found",
			license: "PPB-1001",
			setupMocks: func(repo *MockPPBRepository) {
				repo.On("FindByLicense", ctx, "PPB-1001").Return(&model.PPBRecord{LicenseNumber: "PPB-1001", Name: "Acme Pharma"}, nil)
			},
		},
		{
			name:    "not found",
			license: "PPB-0000",
			setupMocks: func(repo *MockPPBRepository) {
				repo.On("FindByLicense", ctx, "PPB-0000").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedErr: apperrors.ErrLicenseNotFound,
		},
		{
			name:    "store failure is not a miss",
			license: "PPB-1001",
			setupMocks: func(repo *MockPPBRepository) {
				repo.On("FindByLicense", ctx, "PPB-1001").Return(nil, errors.New("disk I/O error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPPBRepository)
			tt.setupMocks(repo)

			record, err := NewPPBService(repo, nil).Get(ctx, tt.license)
			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.name == "store failure is not a miss":
				require.Error(t, err)
				assert.NotErrorIs(t, err, apperrors.ErrLicenseNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Acme Pharma", record.Name)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestPPBService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPPBRepository)
	repo.On("Count", ctx).Return(int64(3), nil).Once()
	n, err := NewPPBService(repo, nil).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)

	repo.On("Count", ctx).Return(int64(0), nil).Once()
	repo.On("Upsert", ctx, mock.MatchedBy(func(r []model.PPBRecord) bool { return len(r) == 20 })).Return(nil)
	n, err = NewPPBService(repo, nil).SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, n)
}
