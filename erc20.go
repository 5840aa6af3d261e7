package solstudio

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// erc20ABI is the subset of the EIP-20 interface the payment flow touches.
//
// Function selectors:
//
//	approve(a,u256)   -> 0x095ea7b3
//	transfer(a,u256)  -> 0xa9059cbb
//	allowance(a,a)    -> 0xdd62ed3e
const erc20ABI = `[
	{
		"name": "approve",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "spender", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	},
	{
		"name": "allowance",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "owner", "type": "address"},
			{"name": "spender", "type": "address"}
		],
		"outputs": [
			{"name": "", "type": "uint256"}
		]
	}
]`

// Token wraps an ERC-20 contract for the payment flow. Transactions are
// submitted through whatever Signer the caller supplies; the token itself
// holds no session state.
type Token struct {
	address common.Address
	abi     abi.ABI
}

// NewToken creates a Token binding for the contract at the given address
// using the standard EIP-20 interface.
func NewToken(address common.Address) *Token {
	return &Token{
		address: address,
		abi:     MustParseABI(erc20ABI),
	}
}

// Address returns the token contract address.
func (t *Token) Address() common.Address {
	return t.address
}

// ABI returns the token interface.
func (t *Token) ABI() abi.ABI {
	return t.abi
}

// Approve submits an approve(spender, amount) transaction through the
// signer and returns its hash. Amounts are in the token's 18-decimal
// fixed-point representation.
func (t *Token) Approve(ctx context.Context, s Signer, spender common.Address, amount *big.Int) (common.Hash, error) {
	data, err := t.abi.Pack("approve", spender, amount)
	if err != nil {
		return common.Hash{}, err
	}
	return s.SendTransaction(ctx, t.address, data)
}

// Transfer submits a transfer(to, amount) transaction through the signer
// and returns its hash.
func (t *Token) Transfer(ctx context.Context, s Signer, to common.Address, amount *big.Int) (common.Hash, error) {
	data, err := t.abi.Pack("transfer", to, amount)
	if err != nil {
		return common.Hash{}, err
	}
	return s.SendTransaction(ctx, t.address, data)
}

// Allowance reads the standing allowance granted by owner to spender.
func (t *Token) Allowance(ctx context.Context, p Provider, owner, spender common.Address) (*big.Int, error) {
	data, err := t.abi.Pack("allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	out, err := p.CallContract(ctx, t.address, data)
	if err != nil {
		return nil, err
	}
	results, err := t.abi.Unpack("allowance", out)
	if err != nil {
		return nil, err
	}
	return results[0].(*big.Int), nil
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
