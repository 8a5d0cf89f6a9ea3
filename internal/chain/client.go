// Package chain wraps the deployed batch registry contract behind typed calls. Writes are submitted by a
// single configured signer and return only after the transaction is mined.
package chain

import (
	"context"
	"crypto/ecdsa"
	_ "embed"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/metrics"
	"pharmatrace/internal/model"
)

//go:embed registry.abi.json
var registryABIJSON string

// Contract method names.
const (
	MethodVerifyProduct            = "verifyProduct"
	MethodRegisterProduct          = "registerProduct"
	MethodTransferOwnership        = "transferOwnership"
	MethodRevokeBatch              = "revokeBatch"
	MethodRegisterUser             = "registerUser"
	MethodLogin                    = "login"
	MethodGetAllBatches            = "getAllBatches"
	MethodGetBatchesByManufacturer = "getBatchesByManufacturer"
)

// weiPerEtherExp is the decimal exponent that turns wei into ether.
const weiPerEtherExp = -18

var (
	// ErrInvalidKey is returned for a malformed signing key.
	ErrInvalidKey = errors.New("chain: invalid private key")
	// ErrInvalidContract is returned for a malformed contract address.
	ErrInvalidContract = errors.New("chain: invalid contract address")
)

// Backend is the node connection the client needs: calls, transactions and receipts.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Client is a typed binding of the registry contract.
type Client struct {
	backend  Backend
	contract *bind.BoundContract
	address  common.Address
	key      *ecdsa.PrivateKey
	from     common.Address
	chainID  *big.Int
	timeout  time.Duration
	closer   func()

	// sendMu serialises submissions from the single signer so nonces are not reused.
	sendMu sync.Mutex
}

// Dial connects to rpcURL and binds the contract at contractAddress, signing with privateKeyHex.
// timeout bounds each write including its confirmation wait; zero means no bound.
func Dial(ctx context.Context, rpcURL, privateKeyHex, contractAddress string, timeout time.Duration) (*Client, error) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}
	c, err := NewClient(ctx, ec, privateKeyHex, contractAddress, timeout)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.closer = ec.Close
	return c, nil
}

// NewClient binds the contract on an existing backend.
func NewClient(ctx context.Context, backend Backend, privateKeyHex, contractAddress string, timeout time.Duration) (*Client, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidContract, contractAddress)
	}

	parsed, err := abi.JSON(strings.NewReader(registryABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	address := common.HexToAddress(contractAddress)
	return &Client{
		backend:  backend,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		address:  address,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		timeout:  timeout,
	}, nil
}

// Signer returns the address that signs every write.
func (c *Client) Signer() string {
	return c.from.Hex()
}

// Close releases the node connection when the client owns it.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// VerifyProduct reads the validity, owner, revocation flag and ownership history of a batch.
func (c *Client) VerifyProduct(ctx context.Context, batchID *big.Int) (*model.Verification, error) {
	out, err := c.call(ctx, MethodVerifyProduct, batchID)
	if err != nil {
		return nil, err
	}

	history := *abi.ConvertType(out[3], new([]common.Address)).(*[]common.Address)
	v := &model.Verification{
		Valid:   *abi.ConvertType(out[0], new(bool)).(*bool),
		Owner:   (*abi.ConvertType(out[1], new(common.Address)).(*common.Address)).Hex(),
		Revoked: *abi.ConvertType(out[2], new(bool)).(*bool),
		History: make([]string, len(history)),
	}
	for i, a := range history {
		v.History[i] = a.Hex()
	}
	return v, nil
}

// Login reads the on-chain registration of wallet.
func (c *Client) Login(ctx context.Context, wallet string) (*model.ChainUser, error) {
	addr, err := hexAddress("wallet", wallet)
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, MethodLogin, addr)
	if err != nil {
		return nil, err
	}
	return &model.ChainUser{
		WalletAddress: addr.Hex(),
		Registered:    *abi.ConvertType(out[0], new(bool)).(*bool),
		Name:          *abi.ConvertType(out[1], new(string)).(*string),
		Role:          model.UserRole(*abi.ConvertType(out[2], new(uint8)).(*uint8)),
	}, nil
}

// GetAllBatches lists every batch on the registry.
func (c *Client) GetAllBatches(ctx context.Context) ([]model.Batch, error) {
	out, err := c.call(ctx, MethodGetAllBatches)
	if err != nil {
		return nil, err
	}
	return projectBatches(out[0]), nil
}

// GetBatchesByManufacturer lists batches registered by manufacturer.
func (c *Client) GetBatchesByManufacturer(ctx context.Context, manufacturer string) ([]model.Batch, error) {
	addr, err := hexAddress("manufacturer", manufacturer)
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, MethodGetBatchesByManufacturer, addr)
	if err != nil {
		return nil, err
	}
	return projectBatches(out[0]), nil
}

// RegisterProduct registers a batch pointing at its pinned metadata.
func (c *Client) RegisterProduct(ctx context.Context, name string, batchID *big.Int, ipfsHash string) (*model.TxReceipt, error) {
	return c.transact(ctx, MethodRegisterProduct, name, batchID, ipfsHash)
}

// TransferOwnership moves a batch to newOwner.
func (c *Client) TransferOwnership(ctx context.Context, batchID *big.Int, newOwner string) (*model.TxReceipt, error) {
	owner, err := hexAddress("newOwner", newOwner)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, MethodTransferOwnership, batchID, owner)
}

// RevokeBatch marks a batch revoked with reason.
func (c *Client) RevokeBatch(ctx context.Context, batchID *big.Int, reason string) (*model.TxReceipt, error) {
	return c.transact(ctx, MethodRevokeBatch, batchID, reason)
}

// RegisterUser records an approved participant on-chain.
func (c *Client) RegisterUser(ctx context.Context, wallet, name string, role model.UserRole) (*model.TxReceipt, error) {
	addr, err := hexAddress("wallet", wallet)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, MethodRegisterUser, addr, name, uint8(role))
}

// hexAddress parses a 20-byte hex address. common.HexToAddress pads or truncates anything else, so
// unchecked input would name a different account.
func hexAddress(field, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if !common.IsHexAddress(value) {
		return common.Address{}, apperrors.NewValidationError("%s %q is not a valid address", field, value)
	}
	return common.HexToAddress(value), nil
}

func (c *Client) call(ctx context.Context, method string, params ...interface{}) (out []interface{}, err error) {
	start := time.Now()
	defer func() { metrics.ObserveContractCall(method, start, err) }()

	if err = c.contract.Call(&bind.CallOpts{Context: ctx, From: c.from}, &out, method, params...); err != nil {
		return nil, wrapChainError(method, err)
	}
	return out, nil
}

// transact submits a write and blocks until it is mined. The wait is detached from the caller's
// cancellation: once submitted, the outcome is awaited up to the client timeout.
func (c *Client) transact(ctx context.Context, method string, params ...interface{}) (receipt *model.TxReceipt, err error) {
	start := time.Now()
	defer func() { metrics.ObserveContractCall(method, start, err) }()

	ctx = context.WithoutCancel(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	tx, err := c.send(ctx, method, params...)
	if err != nil {
		return nil, wrapChainError(method, err)
	}
	log.Infof("%s submitted tx %s", method, tx.Hash().Hex())

	mined, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, wrapChainError(method, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err))
	}
	if mined.Status != types.ReceiptStatusSuccessful {
		return nil, revertedError(method, tx.Hash())
	}

	log.Infof("%s confirmed tx %s in block %d", method, tx.Hash().Hex(), mined.BlockNumber.Uint64())
	return toReceipt(tx, mined), nil
}

func (c *Client) send(ctx context.Context, method string, params ...interface{}) (*types.Transaction, error) {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return c.contract.Transact(opts, method, params...)
}

func toReceipt(tx *types.Transaction, r *types.Receipt) *model.TxReceipt {
	price := r.EffectiveGasPrice
	if price == nil {
		price = tx.GasPrice()
	}
	fee := new(big.Int).Mul(new(big.Int).SetUint64(r.GasUsed), price)

	var block uint64
	if r.BlockNumber != nil {
		block = r.BlockNumber.Uint64()
	}
	return &model.TxReceipt{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: block,
		GasUsed:     r.GasUsed,
		Fee:         decimal.NewFromBigInt(fee, weiPerEtherExp).String(),
	}
}

// contractBatch mirrors the Batch tuple returned by the registry. Field names follow the ABI components.
type contractBatch struct {
	Id           *big.Int
	Name         string
	BatchNumber  string
	IpfsHash     string
	Manufacturer common.Address
	CurrentOwner common.Address
	Revoked      bool
	Timestamp    *big.Int
	RevokeReason string
}

func projectBatches(raw interface{}) []model.Batch {
	decoded := *abi.ConvertType(raw, new([]contractBatch)).(*[]contractBatch)
	batches := make([]model.Batch, len(decoded))
	for i, b := range decoded {
		batches[i] = model.Batch{
			ID:           b.Id,
			Name:         b.Name,
			BatchNumber:  b.BatchNumber,
			IPFSHash:     b.IpfsHash,
			Manufacturer: b.Manufacturer.Hex(),
			CurrentOwner: b.CurrentOwner.Hex(),
			Revoked:      b.Revoked,
			Timestamp:    b.Timestamp,
			RevokeReason: b.RevokeReason,
		}
	}
	return batches
}
