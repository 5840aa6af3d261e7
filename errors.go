package solstudio

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoProvider indicates no wallet provider capability was detected.
	ErrNoProvider = errors.New("solstudio: no wallet provider detected")

	// ErrUserRejected indicates the user declined a provider prompt.
	ErrUserRejected = errors.New("solstudio: request rejected by user")

	// ErrNoAccounts indicates the provider granted access but returned no accounts.
	ErrNoAccounts = errors.New("solstudio: provider returned no accounts")

	// ErrUnrecognizedChain is the distinguished switch failure for a chain
	// the provider does not know about (EIP-3085 code 4902 territory).
	ErrUnrecognizedChain = errors.New("solstudio: chain not recognized by provider")

	// ErrBusy indicates a wallet operation is already in flight.
	ErrBusy = errors.New("solstudio: a wallet operation is already in progress")

	// ErrNotConnected indicates an operation that needs a session was invoked
	// without one.
	ErrNotConnected = errors.New("solstudio: wallet not connected")

	// ErrEmptyFileName indicates a file was created with an empty name.
	ErrEmptyFileName = errors.New("solstudio: file name must not be empty")

	// ErrNoFileSelected indicates no source buffer is currently active.
	ErrNoFileSelected = errors.New("solstudio: no file selected")
)

// ChainSwitchError indicates the provider failed to switch to the
// required chain.
type ChainSwitchError struct {
	ChainID *big.Int
	Err     error
}

func (e *ChainSwitchError) Error() string {
	return fmt.Sprintf("solstudio: switching to chain %v: %v", e.ChainID, e.Err)
}

func (e *ChainSwitchError) Unwrap() error {
	return e.Err
}

// Unrecognized reports whether the switch failed because the provider does
// not know the target chain.
func (e *ChainSwitchError) Unrecognized() bool {
	return errors.Is(e.Err, ErrUnrecognizedChain)
}

// TransactionError indicates a token transaction failed, either at
// submission or while awaiting confirmation.
type TransactionError struct {
	Op    string      // "approve" or "transfer"
	Stage string      // "submit" or "confirm"
	Hash  common.Hash // zero until submission succeeded
	Err   error
}

func (e *TransactionError) Error() string {
	if e.Hash == (common.Hash{}) {
		return fmt.Sprintf("solstudio: %s %s: %v", e.Op, e.Stage, e.Err)
	}
	return fmt.Sprintf("solstudio: %s %s (%s): %v", e.Op, e.Stage, ShortHash(e.Hash), e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// FileIndexError indicates a selection outside the stored file range.
type FileIndexError struct {
	Index int
	Len   int
}

func (e *FileIndexError) Error() string {
	return fmt.Sprintf("solstudio: file index %d out of range (have %d files)", e.Index, e.Len)
}
