package solstudio

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Provider is the capability surface of a wallet. It is always injected;
// the package never probes the environment for one. Implementations signal
// user rejection by returning an error satisfying errors.Is(err,
// ErrUserRejected), and an unknown switch target with ErrUnrecognizedChain.
type Provider interface {
	// RequestAccounts asks the wallet for account access. The call suspends
	// until the user approves or rejects in the wallet's own UI.
	RequestAccounts(ctx context.Context) ([]common.Address, error)

	// ChainID returns the chain the provider is currently connected to.
	ChainID(ctx context.Context) (*big.Int, error)

	// SwitchChain asks the provider to move to the given chain.
	SwitchChain(ctx context.Context, chainID *big.Int) error

	// Signer derives a signer handle bound to the active account.
	Signer(ctx context.Context) (Signer, error)

	// CallContract executes a read-only contract call and returns the
	// ABI-encoded result.
	CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)
}

// Signer is a handle authorized to produce signed transactions on behalf of
// one account. Handles are short-lived: each payment operation re-derives
// one from the Provider rather than holding on to it.
type Signer interface {
	// Address returns the account this signer acts for.
	Address() common.Address

	// SendTransaction signs and submits a transaction carrying the given
	// calldata to the target contract, returning its hash. The call suspends
	// until the wallet confirms or rejects submission.
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)

	// WaitMined blocks until the submitted transaction is confirmed on
	// chain, or fails.
	WaitMined(ctx context.Context, tx common.Hash) error
}

// ShortAddress renders an address in the truncated first-6/last-4 display
// form, e.g. "0x742d...f44e". The full address is never shortened in state,
// only for logs and UI.
func ShortAddress(a common.Address) string {
	s := a.Hex()
	return fmt.Sprintf("%s...%s", s[:6], s[len(s)-4:])
}

// ShortHash renders a transaction hash in the same truncated display form.
func ShortHash(h common.Hash) string {
	s := h.Hex()
	return fmt.Sprintf("%s...%s", s[:6], s[len(s)-4:])
}
