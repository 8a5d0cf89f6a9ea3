package service

import (
	"context"
	"math/big"

	"pharmatrace/internal/model"
)

// BatchRegistry is the batch side of the registry contract. Writes return once mined.
type BatchRegistry interface {
	VerifyProduct(ctx context.Context, batchID *big.Int) (*model.Verification, error)
	RegisterProduct(ctx context.Context, name string, batchID *big.Int, ipfsHash string) (*model.TxReceipt, error)
	TransferOwnership(ctx context.Context, batchID *big.Int, newOwner string) (*model.TxReceipt, error)
	RevokeBatch(ctx context.Context, batchID *big.Int, reason string) (*model.TxReceipt, error)
	GetAllBatches(ctx context.Context) ([]model.Batch, error)
	GetBatchesByManufacturer(ctx context.Context, manufacturer string) ([]model.Batch, error)
}

// UserRegistry is the participant side of the registry contract.
type UserRegistry interface {
	RegisterUser(ctx context.Context, wallet, name string, role model.UserRole) (*model.TxReceipt, error)
	Login(ctx context.Context, wallet string) (*model.ChainUser, error)
}

// MetadataPinner uploads JSON documents to content-addressed storage.
type MetadataPinner interface {
	PinJSON(ctx context.Context, document interface{}, name string) (string, error)
}

// QREncoder renders text as an image data URL.
type QREncoder interface {
	Encode(text string) (string, error)
}
