package model

import (
	"strings"
	"time"
)

// RegistrationStatus is the lifecycle state of a signup request.
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	// StatusRejected is never persisted: rejected requests are deleted.
	StatusRejected RegistrationStatus = "rejected"
	// StatusNotFound is reported for wallets without a request.
	StatusNotFound RegistrationStatus = "not_found"
)

// UserRole mirrors the role enum of the registry contract.
type UserRole uint8

const (
	RoleManufacturer UserRole = 1
	RoleDistributor  UserRole = 2
	RolePharmacy     UserRole = 3
)

// Valid reports whether r is one of the contract roles.
func (r UserRole) Valid() bool {
	return r >= RoleManufacturer && r <= RolePharmacy
}

func (r UserRole) String() string {
	switch r {
	case RoleManufacturer:
		return "manufacturer"
	case RoleDistributor:
		return "distributor"
	case RolePharmacy:
		return "pharmacy"
	default:
		return "unknown"
	}
}

// RegistrationRequest is a signup awaiting (or past) admin review. At most one row exists per wallet.
type RegistrationRequest struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	Name          string             `json:"name" gorm:"size:255;not null"`
	Email         string             `json:"email" gorm:"size:255"`
	Role          UserRole           `json:"role" gorm:"not null"`
	WalletAddress string             `json:"walletAddress" gorm:"size:64;uniqueIndex;not null"`
	LicenseNumber string             `json:"licenseNumber" gorm:"size:64;not null"`
	Status        RegistrationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// NormalizeWallet returns the canonical (trimmed, lower-case) form used to store and look up wallets.
func NormalizeWallet(wallet string) string {
	return strings.ToLower(strings.TrimSpace(wallet))
}
