package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of a run
var (
	ErrScan          = errors.New("scan failed")
	ErrPersist       = errors.New("persist failed")
	ErrProtocol      = errors.New("invalid preprocessor request")
	ErrLedger        = errors.New("run ledger failed")
	ErrForcedFailure = errors.New("Boom!!1!")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ScanError aborts a run when any part of the source tree cannot be read.
// No summary is written.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Is(target error) bool {
	return target == ErrScan
}

// PersistError represents a failure to read or replace the summary file
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}

// ProtocolError represents a malformed request from the documentation host
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrProtocol, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrProtocol, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}

// LedgerError reports a run that could not be recorded. The summary
// itself was already persisted when it occurs.
type LedgerError struct {
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("failed to record run: %v", e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

func (e *LedgerError) Is(target error) bool {
	return target == ErrLedger
}
