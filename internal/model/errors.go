package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented is returned by operations reserved for a later extension.
	ErrNotImplemented = errors.New("not implemented")
	// ErrMissingSatpoint is returned by mint when no satpoint was given.
	ErrMissingSatpoint = errors.New("mint must set satpoint")
	// ErrNotFound is returned when the data source has no such record.
	ErrNotFound = errors.New("not found")
	// ErrNoSuitableFunding signals that the commit address is not funded yet.
	// The funding poll treats it as a retry, not a failure.
	ErrNoSuitableFunding = errors.New("no suitable funding at commit address")
	// ErrInvalidTransition is returned when a plan is moved out of order.
	ErrInvalidTransition = errors.New("invalid plan state transition")
)

// WalletNotSelectedError is returned when a wallet has no active address.
type WalletNotSelectedError struct {
	Role string
}

func (e *WalletNotSelectedError) Error() string {
	return fmt.Sprintf("%s wallet: not selected address", e.Role)
}

// InsufficientFundsError reports a funding shortfall in sats.
type InsufficientFundsError struct {
	Required  uint64
	Available uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d sats, available %d sats", e.Required, e.Available)
}

// FundingTimeoutError is returned when the commit address was not funded
// within the polling budget. Retrying the operation reuses the deposit.
type FundingTimeoutError struct {
	CommitAddress string
	Attempts      int
}

func (e *FundingTimeoutError) Error() string {
	return fmt.Sprintf("commit address %s not funded after %d attempts", e.CommitAddress, e.Attempts)
}

// TxBuildError is a structural failure of a transaction template. Retrying
// without changing the inputs fails the same way.
type TxBuildError struct {
	Reason string
	Err    error
}

func (e *TxBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build transaction: %s: %v", e.Reason, e.Err)
	}
	return "build transaction: " + e.Reason
}

func (e *TxBuildError) Unwrap() error { return e.Err }

// RelayError carries the backend's reason for rejecting a broadcast.
type RelayError struct {
	Reason string
}

func (e *RelayError) Error() string {
	return "relay rejected: " + e.Reason
}

// UnsupportedFilterError is returned for inscription filters a backend cannot serve.
type UnsupportedFilterError struct {
	Filter string
}

func (e *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("unsupported inscription filter: %s", e.Filter)
}

// MetadataDecodeError wraps malformed inscription JSON.
type MetadataDecodeError struct {
	Err error
}

func (e *MetadataDecodeError) Error() string {
	return fmt.Sprintf("decode meta error: %v", e.Err)
}

func (e *MetadataDecodeError) Unwrap() error { return e.Err }

// GeneratorExecutionError wraps any failure raised while loading or running a generator.
type GeneratorExecutionError struct {
	URI string
	Err error
}

func (e *GeneratorExecutionError) Error() string {
	return fmt.Sprintf("generator %s: %v", e.URI, e.Err)
}

func (e *GeneratorExecutionError) Unwrap() error { return e.Err }

// NetworkError wraps a transport failure talking to a backend.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// OperationError reports where a token operation stopped. The plan state and
// commit address are what a caller needs to retry.
type OperationError struct {
	Op            string
	Step          string
	State         PlanState
	CommitAddress string
	Err           error
}

func (e *OperationError) Error() string {
	if e.CommitAddress == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Step, e.Err)
	}
	return fmt.Sprintf("%s: %s (state %s, commit %s): %v", e.Op, e.Step, e.State, e.CommitAddress, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
