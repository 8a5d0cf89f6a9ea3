package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/gommon/log"

	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/model"
)

// maxBatchIDBits is the width of the contract's batch id.
const maxBatchIDBits = 256

// VerifyResult is the contract's verification answer, with an optional QR of the batch id.
type VerifyResult struct {
	model.Verification
	QRCode string `json:"qrCode,omitempty"`
}

// RegisterProductInput describes a batch to register. Details is pinned first unless only IPFSHash is
// given, in which case the already-pinned identifier is used as is.
type RegisterProductInput struct {
	Name     string
	BatchID  string
	Details  json.RawMessage
	IPFSHash string
}

// RegisterProductResult is the confirmed registration plus its verification link.
type RegisterProductResult struct {
	model.TxReceipt
	IPFSHash  string `json:"ipfsHash"`
	VerifyURL string `json:"verifyUrl"`
	QRCode    string `json:"qrCode"`
}

// BatchService proxies the batch registry contract.
type BatchService interface {
	Verify(ctx context.Context, batchID string) (*VerifyResult, error)
	RegisterProduct(ctx context.Context, in RegisterProductInput) (*RegisterProductResult, error)
	TransferOwnership(ctx context.Context, batchID, newOwner string) (*model.TxReceipt, error)
	RevokeBatch(ctx context.Context, batchID, reason string) (*model.TxReceipt, error)
	ListAll(ctx context.Context) ([]model.Batch, error)
	ListByManufacturer(ctx context.Context, wallet string) ([]model.Batch, error)
	// PinMetadata uploads metadata and returns its content identifier.
	PinMetadata(ctx context.Context, metadata json.RawMessage) (string, error)
}

type batchService struct {
	registry    BatchRegistry
	pinner      MetadataPinner
	qr          QREncoder
	frontendURL string
	verifyQR    bool
}

// NewBatchService creates a new batch service. Verification links are frontendURL + "/verify/" + id;
// verifyQR attaches a QR of the raw batch id to verification answers.
func NewBatchService(registry BatchRegistry, pinner MetadataPinner, qr QREncoder, frontendURL string, verifyQR bool) BatchService {
	return &batchService{
		registry:    registry,
		pinner:      pinner,
		qr:          qr,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		verifyQR:    verifyQR,
	}
}

// ParseBatchID parses a decimal uint256 batch id. positive additionally rejects zero.
func ParseBatchID(raw string, positive bool) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, apperrors.NewValidationError("batchId is required")
	}
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok || id.Sign() < 0 || id.BitLen() > maxBatchIDBits {
		return nil, apperrors.NewValidationError("batchId must be a non-negative integer")
	}
	if positive && id.Sign() == 0 {
		return nil, apperrors.NewValidationError("batchId must be positive")
	}
	return id, nil
}

func requireAddress(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperrors.NewValidationError("%s is required", field)
	}
	if !common.IsHexAddress(value) {
		return "", apperrors.NewValidationError("%s is not a valid address", field)
	}
	return value, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func (s *batchService) Verify(ctx context.Context, batchID string) (*VerifyResult, error) {
	id, err := ParseBatchID(batchID, false)
	if err != nil {
		return nil, err
	}

	v, err := s.registry.VerifyProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &VerifyResult{Verification: *v}
	if s.verifyQR {
		if result.QRCode, err = s.qr.Encode(id.String()); err != nil {
			return nil, fmt.Errorf("render qr: %w", err)
		}
	}
	return result, nil
}

// RegisterProduct pins metadata, registers the batch, then renders the verification QR. Nothing is
// written on-chain when pinning fails.
func (s *batchService) RegisterProduct(ctx context.Context, in RegisterProductInput) (*RegisterProductResult, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	id, err := ParseBatchID(in.BatchID, false)
	if err != nil {
		return nil, err
	}

	ipfsHash := strings.TrimSpace(in.IPFSHash)
	hasDetails := !isEmptyJSON(in.Details)
	if !hasDetails && ipfsHash == "" {
		return nil, apperrors.NewValidationError("details is required")
	}

	if hasDetails {
		ipfsHash, err = s.pinner.PinJSON(ctx, in.Details, fmt.Sprintf("batch-%s", id))
		if err != nil {
			return nil, err
		}
	}

	receipt, err := s.registry.RegisterProduct(ctx, name, id, ipfsHash)
	if err != nil {
		return nil, err
	}

	verifyURL := s.frontendURL + "/verify/" + id.String()
	qrCode, err := s.qr.Encode(verifyURL)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	log.Infof("batch %s registered with metadata %s", id, ipfsHash)
	return &RegisterProductResult{
		TxReceipt: *receipt,
		IPFSHash:  ipfsHash,
		VerifyURL: verifyURL,
		QRCode:    qrCode,
	}, nil
}

func (s *batchService) TransferOwnership(ctx context.Context, batchID, newOwner string) (*model.TxReceipt, error) {
	id, err := ParseBatchID(batchID, false)
	if err != nil {
		return nil, err
	}
	owner, err := requireAddress("newOwner", newOwner)
	if err != nil {
		return nil, err
	}
	return s.registry.TransferOwnership(ctx, id, owner)
}

func (s *batchService) RevokeBatch(ctx context.Context, batchID, reason string) (*model.TxReceipt, error) {
	id, err := ParseBatchID(batchID, true)
	if err != nil {
		return nil, err
	}
	return s.registry.RevokeBatch(ctx, id, strings.TrimSpace(reason))
}

func (s *batchService) ListAll(ctx context.Context) ([]model.Batch, error) {
	return s.registry.GetAllBatches(ctx)
}

func (s *batchService) ListByManufacturer(ctx context.Context, wallet string) ([]model.Batch, error) {
	manufacturer, err := requireAddress("walletAddress", wallet)
	if err != nil {
		return nil, err
	}
	return s.registry.GetBatchesByManufacturer(ctx, manufacturer)
}

func (s *batchService) PinMetadata(ctx context.Context, metadata json.RawMessage) (string, error) {
	if isEmptyJSON(metadata) {
		return "", apperrors.NewValidationError("metadata is required")
	}
	return s.pinner.PinJSON(ctx, metadata, "")
}
