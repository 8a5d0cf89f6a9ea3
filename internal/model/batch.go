package model

import "math/big"

// Batch is a read projection of an on-chain batch. Chain integers stay arbitrary precision.
type Batch struct {
	ID           *big.Int `json:"id"`
	Name         string   `json:"name"`
	BatchNumber  string   `json:"batchNumber"`
	IPFSHash     string   `json:"ipfsHash"`
	Manufacturer string   `json:"manufacturer"`
	CurrentOwner string   `json:"currentOwner"`
	Revoked      bool     `json:"revoked"`
	Timestamp    *big.Int `json:"timestamp"`
	RevokeReason string   `json:"revokeReason"`
}

// Verification is the contract's answer to verifyProduct.
type Verification struct {
	Valid   bool     `json:"valid"`
	Owner   string   `json:"owner"`
	Revoked bool     `json:"revoked"`
	History []string `json:"history"`
}

// ChainUser is a participant as registered on-chain.
type ChainUser struct {
	WalletAddress string   `json:"walletAddress"`
	Name          string   `json:"name"`
	Role          UserRole `json:"role"`
	Registered    bool     `json:"registered"`
}

// TxReceipt summarises a confirmed contract write. Fee is in ether.
type TxReceipt struct {
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
	GasUsed     uint64 `json:"gasUsed"`
	Fee         string `json:"fee"`
}
