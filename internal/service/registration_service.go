package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"pharmatrace/internal/auth"
	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/metrics"
	"pharmatrace/internal/model"
	"pharmatrace/internal/repository"
)

// SignupInput is a participant's registration request.
type SignupInput struct {
	Name          string
	Email         string
	Role          model.UserRole
	WalletAddress string
	LicenseNumber string
}

// LoginResult is an approved participant and a session token for it.
type LoginResult struct {
	User  *model.RegistrationRequest
	Token string
}

// RegistrationService runs the signup → pending → approve/reject workflow.
type RegistrationService interface {
	Signup(ctx context.Context, in SignupInput) (*model.RegistrationRequest, error)
	Login(ctx context.Context, wallet string) (*LoginResult, error)
	ListPending(ctx context.Context) ([]model.RegistrationRequest, error)
	// Approve registers the wallet on-chain, waits for confirmation, then marks the request approved.
	// A failed chain write leaves the request pending.
	Approve(ctx context.Context, wallet string) (*model.TxReceipt, error)
	Reject(ctx context.Context, wallet string) error
	Status(ctx context.Context, wallet string) (model.RegistrationStatus, error)
	OnChainUser(ctx context.Context, wallet string) (*model.ChainUser, error)
}

type registrationService struct {
	repo     repository.RegistrationRepository
	ppb      PPBService
	registry UserRegistry
	tokens   *auth.JWTService

	// Striped per-wallet locking of approve/reject
	walletLocks [walletLockStripes]sync.Mutex
}

// walletLockStripes bounds the lock table; unrelated wallets may share a stripe.
const walletLockStripes = 256

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	repo repository.RegistrationRepository,
	ppb PPBService,
	registry UserRegistry,
	tokens *auth.JWTService,
) RegistrationService {
	return &registrationService{
		repo:     repo,
		ppb:      ppb,
		registry: registry,
		tokens:   tokens,
	}
}

// getMutex returns the lock stripe guarding a specific wallet.
func (s *registrationService) getMutex(wallet string) *sync.Mutex {
	return &s.walletLocks[xxhash.Sum64String(wallet)%walletLockStripes]
}

func requireWallet(wallet string) (string, error) {
	wallet = model.NormalizeWallet(wallet)
	if wallet == "" {
		return "", apperrors.NewValidationError("walletAddress is required")
	}
	return wallet, nil
}

// Signup records a pending request. The wallet must be new and the license must exist in the PPB mirror.
func (s *registrationService) Signup(ctx context.Context, in SignupInput) (*model.RegistrationRequest, error) {
	wallet, err := requireWallet(in.WalletAddress)
	if err != nil {
		return nil, err
	}

	// Duplicate wallets are rejected before anything else is looked at
	if _, err := s.repo.FindByWallet(ctx, wallet); err == nil {
		return nil, apperrors.ErrWalletExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find request: %w", err)
	}

	if !in.Role.Valid() {
		return nil, apperrors.NewValidationError("role must be 1 (manufacturer), 2 (distributor) or 3 (pharmacy)")
	}
	// A blank license has no PPB record either
	license := strings.TrimSpace(in.LicenseNumber)
	if license == "" {
		return nil, apperrors.ErrLicenseNotFound
	}
	if _, err := s.ppb.Get(ctx, license); err != nil {
		return nil, err
	}

	req := &model.RegistrationRequest{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Role:          in.Role,
		WalletAddress: wallet,
		LicenseNumber: license,
		Status:        model.StatusPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrWalletExists
		}
		return nil, fmt.Errorf("create request: %w", err)
	}

	metrics.ObserveTransition("signup")
	log.Infof("registration request %d created for %s (%s)", req.ID, wallet, req.Role)
	return req, nil
}

// Login succeeds only for a wallet whose request was approved.
func (s *registrationService) Login(ctx context.Context, wallet string) (*LoginResult, error) {
	wallet, err := requireWallet(wallet)
	if err != nil {
		return nil, err
	}

	req, err := s.repo.FindByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	if req.Status != model.StatusApproved {
		return nil, apperrors.ErrUserNotFound
	}

	token, err := s.tokens.GenerateToken(req.WalletAddress, req.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{User: req, Token: token}, nil
}

func (s *registrationService) ListPending(ctx context.Context) ([]model.RegistrationRequest, error) {
	reqs, err := s.repo.ListByStatus(ctx, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	return reqs, nil
}

func (s *registrationService) Approve(ctx context.Context, wallet string) (*model.TxReceipt, error) {
	wallet, err := requireWallet(wallet)
	if err != nil {
		return nil, err
	}

	mutex := s.getMutex(wallet)
	mutex.Lock()
	defer mutex.Unlock()

	req, err := s.pending(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if !common.IsHexAddress(req.WalletAddress) {
		log.Warnf("approve %s: not a hex address, request stays pending", wallet)
		return nil, apperrors.NewValidationError("wallet %q is not a valid address and cannot be registered on-chain", req.WalletAddress)
	}

	receipt, err := s.registry.RegisterUser(ctx, req.WalletAddress, req.Name, req.Role)
	if err != nil {
		log.Warnf("approve %s: on-chain registration failed, request stays pending: %v", wallet, err)
		return nil, err
	}

	// The chain write is committed; the local commit must not be lost to a client disconnect
	ok, err := s.repo.TransitionStatus(context.WithoutCancel(ctx), wallet, model.StatusPending, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("commit approval of %s after tx %s: %w", wallet, receipt.TxHash, err)
	}
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	metrics.ObserveTransition("approve")
	log.Infof("approved %s in tx %s", wallet, receipt.TxHash)
	return receipt, nil
}

func (s *registrationService) Reject(ctx context.Context, wallet string) error {
	wallet, err := requireWallet(wallet)
	if err != nil {
		return err
	}

	mutex := s.getMutex(wallet)
	mutex.Lock()
	defer mutex.Unlock()

	ok, err := s.repo.DeleteWithStatus(ctx, wallet, model.StatusPending)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if !ok {
		return apperrors.ErrRequestNotFound
	}

	metrics.ObserveTransition("reject")
	log.Infof("rejected %s", wallet)
	return nil
}

// Status reports the request status of wallet, or StatusNotFound when it has none.
func (s *registrationService) Status(ctx context.Context, wallet string) (model.RegistrationStatus, error) {
	wallet, err := requireWallet(wallet)
	if err != nil {
		return "", err
	}

	req, err := s.repo.FindByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.StatusNotFound, nil
		}
		return "", fmt.Errorf("find request: %w", err)
	}
	return req.Status, nil
}

// OnChainUser reads the wallet's registration from the contract.
func (s *registrationService) OnChainUser(ctx context.Context, wallet string) (*model.ChainUser, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return nil, apperrors.NewValidationError("walletAddress is required")
	}
	if !common.IsHexAddress(wallet) {
		return nil, apperrors.NewValidationError("invalid wallet address %q", wallet)
	}
	return s.registry.Login(ctx, wallet)
}

func (s *registrationService) pending(ctx context.Context, wallet string) (*model.RegistrationRequest, error) {
	req, err := s.repo.FindByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	if req.Status != model.StatusPending {
		return nil, apperrors.ErrRequestNotFound
	}
	return req, nil
}
