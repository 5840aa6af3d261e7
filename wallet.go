package solstudio

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// ConnectHook runs after a successful connect with the freshly derived
// signer. The studio wires the silent standing approval through it.
type ConnectHook func(ctx context.Context, s Signer)

// WalletSession owns the connection to the wallet provider: the active
// address, the observed chain, and the connect flow itself. Sessions are
// never torn down; Connect may be called repeatedly and redoes the whole
// account-request/chain-check sequence each time.
type WalletSession struct {
	provider  Provider
	cfg       Config
	logs      *LogSink
	onConnect ConnectHook

	mu        sync.Mutex
	address   common.Address
	connected bool
	chainID   *big.Int
}

// NewWalletSession creates a session against the given provider. The hook
// may be nil.
func NewWalletSession(provider Provider, cfg Config, logs *LogSink, hook ConnectHook) *WalletSession {
	return &WalletSession{
		provider:  provider,
		cfg:       cfg,
		logs:      logs,
		onConnect: hook,
	}
}

// Connect establishes the wallet session: request account access, check the
// active chain (switching when needed), derive a signer, and fire the
// connect hook. Chain-switch failures are deliberately non-fatal; account
// rejection and a missing provider abort with no session.
//
// The returned signer is not retained: payment operations re-derive their
// own from the provider.
func (w *WalletSession) Connect(ctx context.Context) (Signer, error) {
	if w.provider == nil {
		w.logs.Error("No wallet provider detected. Please install a wallet extension.")
		return nil, ErrNoProvider
	}

	w.logs.Info("Connecting wallet...")

	accounts, err := w.provider.RequestAccounts(ctx)
	if err != nil {
		w.logs.Error("Wallet connection failed: %v", err)
		return nil, err
	}
	if len(accounts) == 0 {
		w.logs.Error("Wallet connection failed: %v", ErrNoAccounts)
		return nil, ErrNoAccounts
	}

	addr := accounts[0]
	w.mu.Lock()
	w.address = addr
	w.connected = true
	w.mu.Unlock()
	w.logs.Success("Wallet connected: %s", ShortAddress(addr))

	w.checkChain(ctx)

	signer, err := w.provider.Signer(ctx)
	if err != nil {
		w.logs.Error("Could not obtain signer: %v", err)
		return nil, err
	}

	if w.onConnect != nil {
		w.onConnect(ctx, signer)
	}
	return signer, nil
}

// checkChain reads the active chain and asks for a switch when it is not
// the required one. Every outcome here is soft: the connect flow proceeds
// on whatever chain ends up active.
func (w *WalletSession) checkChain(ctx context.Context) {
	chainID, err := w.provider.ChainID(ctx)
	if err != nil {
		w.logs.Error("Could not read network: %v", err)
		return
	}

	if chainID.Cmp(w.cfg.ChainID) != 0 {
		if err := w.provider.SwitchChain(ctx, w.cfg.ChainID); err != nil {
			serr := &ChainSwitchError{ChainID: w.cfg.ChainID, Err: err}
			if serr.Unrecognized() {
				w.logs.Error("Chain %v is not configured in your wallet. Add it manually and reconnect.", w.cfg.ChainID)
			} else {
				w.logs.Error("Network switch failed: %v", err)
			}
			w.setChainID(chainID)
			return
		}
		chainID = new(big.Int).Set(w.cfg.ChainID)
	}
	w.setChainID(chainID)
}

func (w *WalletSession) setChainID(id *big.Int) {
	w.mu.Lock()
	w.chainID = id
	w.mu.Unlock()
}

// Connected reports whether a session exists.
func (w *WalletSession) Connected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connected
}

// Address returns the full session address and whether one is set.
func (w *WalletSession) Address() (common.Address, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.address, w.connected
}

// ChainID returns the chain observed at the last connect, or nil before
// the first successful account capture.
func (w *WalletSession) ChainID() *big.Int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chainID
}
