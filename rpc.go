package solstudio

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// RPCProvider implements Provider over a go-ethereum RPC client and a local
// private key. It behaves like a headless wallet: account access is always
// granted (there is no user to prompt), and the active chain is whatever
// the node serves, so SwitchChain can only verify, never switch.
type RPCProvider struct {
	client *ethclient.Client
	key    *ecdsa.PrivateKey
	addr   common.Address

	// pollInterval paces receipt polling in WaitMined.
	pollInterval time.Duration
}

// NewRPCProvider wraps an existing client and key.
func NewRPCProvider(client *ethclient.Client, key *ecdsa.PrivateKey) *RPCProvider {
	return &RPCProvider{
		client:       client,
		key:          key,
		addr:         crypto.PubkeyToAddress(key.PublicKey),
		pollInterval: time.Second,
	}
}

// DialRPCProvider connects to an RPC endpoint and loads a hex-encoded
// private key (with or without the 0x prefix).
func DialRPCProvider(ctx context.Context, rawurl, hexKey string) (*RPCProvider, error) {
	client, err := ethclient.DialContext(ctx, rawurl)
	if err != nil {
		return nil, fmt.Errorf("solstudio: dialing %s: %w", rawurl, err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("solstudio: parsing private key: %w", err)
	}

	return NewRPCProvider(client, key), nil
}

// Close releases the underlying client connection.
func (p *RPCProvider) Close() {
	p.client.Close()
}

// RequestAccounts returns the key's address. A local key has no approval
// UI, so the request never suspends and is never rejected.
func (p *RPCProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	return []common.Address{p.addr}, nil
}

// ChainID returns the chain the node serves.
func (p *RPCProvider) ChainID(ctx context.Context) (*big.Int, error) {
	return p.client.ChainID(ctx)
}

// SwitchChain verifies the node is already on the requested chain. An RPC
// endpoint is pinned to one chain, so any mismatch surfaces as the
// unrecognized-chain signal.
func (p *RPCProvider) SwitchChain(ctx context.Context, chainID *big.Int) error {
	active, err := p.client.ChainID(ctx)
	if err != nil {
		return err
	}
	if active.Cmp(chainID) != 0 {
		return fmt.Errorf("%w: node serves chain %v", ErrUnrecognizedChain, active)
	}
	return nil
}

// Signer derives a signer bound to the key's address.
func (p *RPCProvider) Signer(ctx context.Context) (Signer, error) {
	return &rpcSigner{p: p}, nil
}

// CallContract executes a read-only call at the latest block.
func (p *RPCProvider) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return p.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
}

// rpcSigner signs and submits legacy transactions through the provider's
// client and key.
type rpcSigner struct {
	p *RPCProvider
}

func (s *rpcSigner) Address() common.Address {
	return s.p.addr
}

func (s *rpcSigner) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	client := s.p.client

	nonce, err := client.PendingNonceAt(ctx, s.p.addr)
	if err != nil {
		return common.Hash{}, err
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	gasLimit, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: s.p.addr,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), s.p.key)
	if err != nil {
		return common.Hash{}, err
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}

// WaitMined polls for the transaction receipt until the context is done.
// A reverted transaction is reported as an error.
func (s *rpcSigner) WaitMined(ctx context.Context, tx common.Hash) error {
	ticker := time.NewTicker(s.p.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.p.client.TransactionReceipt(ctx, tx)
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return errors.New("solstudio: transaction reverted")
			}
			return nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
