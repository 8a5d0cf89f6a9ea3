package service

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"

	"pharmatrace/internal/model"
)

// MockRegistrationRepository is a mock implementation of RegistrationRepository.
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, req *model.RegistrationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRegistrationRepository) FindByWallet(ctx context.Context, wallet string) (*model.RegistrationRequest, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegistrationRequest), args.Error(1)
}

func (m *MockRegistrationRepository) ListByStatus(ctx context.Context, status model.RegistrationStatus) ([]model.RegistrationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RegistrationRequest), args.Error(1)
}

func (m *MockRegistrationRepository) TransitionStatus(ctx context.Context, wallet string, from, to model.RegistrationStatus) (bool, error) {
	args := m.Called(ctx, wallet, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockRegistrationRepository) DeleteWithStatus(ctx context.Context, wallet string, status model.RegistrationStatus) (bool, error) {
	args := m.Called(ctx, wallet, status)
	return args.Bool(0), args.Error(1)
}

// MockPPBRepository is a mock implementation of PPBRepository.
type MockPPBRepository struct {
	mock.Mock
}

func (m *MockPPBRepository) FindByLicense(ctx context.Context, licenseNumber string) (*model.PPBRecord, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PPBRecord), args.Error(1)
}

func (m *MockPPBRepository) List(ctx context.Context) ([]model.PPBRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PPBRecord), args.Error(1)
}

func (m *MockPPBRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPPBRepository) Upsert(ctx context.Context, records []model.PPBRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// MockRegistry is a mock of both sides of the registry contract.
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) receipt(args mock.Arguments) (*model.TxReceipt, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TxReceipt), args.Error(1)
}

func (m *MockRegistry) batches(args mock.Arguments) ([]model.Batch, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Batch), args.Error(1)
}

func (m *MockRegistry) VerifyProduct(ctx context.Context, batchID *big.Int) (*model.Verification, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Verification), args.Error(1)
}

func (m *MockRegistry) RegisterProduct(ctx context.Context, name string, batchID *big.Int, ipfsHash string) (*model.TxReceipt, error) {
	return m.receipt(m.Called(ctx, name, batchID, ipfsHash))
}

func (m *MockRegistry) TransferOwnership(ctx context.Context, batchID *big.Int, newOwner string) (*model.TxReceipt, error) {
	return m.receipt(m.Called(ctx, batchID, newOwner))
}

func (m *MockRegistry) RevokeBatch(ctx context.Context, batchID *big.Int, reason string) (*model.TxReceipt, error) {
	return m.receipt(m.Called(ctx, batchID, reason))
}

func (m *MockRegistry) GetAllBatches(ctx context.Context) ([]model.Batch, error) {
	return m.batches(m.Called(ctx))
}

func (m *MockRegistry) GetBatchesByManufacturer(ctx context.Context, manufacturer string) ([]model.Batch, error) {
	return m.batches(m.Called(ctx, manufacturer))
}

func (m *MockRegistry) RegisterUser(ctx context.Context, wallet, name string, role model.UserRole) (*model.TxReceipt, error) {
	return m.receipt(m.Called(ctx, wallet, name, role))
}

func (m *MockRegistry) Login(ctx context.Context, wallet string) (*model.ChainUser, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChainUser), args.Error(1)
}

// MockPinner is a mock implementation of MetadataPinner.
type MockPinner struct {
	mock.Mock
}

func (m *MockPinner) PinJSON(ctx context.Context, document interface{}, name string) (string, error) {
	args := m.Called(ctx, document, name)
	return args.String(0), args.Error(1)
}

// MockQREncoder is a mock implementation of QREncoder.
type MockQREncoder struct {
	mock.Mock
}

func (m *MockQREncoder) Encode(text string) (string, error) {
	args := m.Called(text)
	return args.String(0), args.Error(1)
}
