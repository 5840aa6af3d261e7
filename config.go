package solstudio

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
)

// TokenDecimals is the fixed-point precision of the fee token.
const TokenDecimals = 18

// Default payment configuration. The recipient collects both the standing
// approval and the per-deployment fee; the token is an 18-decimal ERC-20 on
// the required chain.
var (
	// DefaultRecipient receives deployment fees.
	DefaultRecipient = common.HexToAddress("0x742d35Cc6634C0532925a3b844Bc454e4438f44e")

	// DefaultTokenAddress is the fee token contract (DAI on mainnet).
	DefaultTokenAddress = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")

	// DefaultChainID is the chain every payment must run on (Ethereum mainnet).
	DefaultChainID = big.NewInt(1)

	// DefaultApproveAmount is the standing allowance requested right after
	// connect: one million tokens.
	DefaultApproveAmount = tokens(1_000_000)

	// DefaultTransferAmount is the per-deployment fee: ten tokens.
	DefaultTransferAmount = tokens(10)
)

// tokens converts a whole-token count to the 18-decimal representation.
func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(params.Ether))
}

// Config fixes the payment targets and quantities for one Studio. All
// invariants of the payment flow are expressed relative to these values.
type Config struct {
	// Recipient receives the approval and the fee transfer.
	Recipient common.Address

	// Token is the ERC-20 contract the payment flow transacts against.
	Token common.Address

	// ChainID is the required chain; connect switches to it when needed.
	ChainID *big.Int

	// ApproveAmount is the standing allowance granted on connect.
	ApproveAmount *big.Int

	// TransferAmount is the fee moved by the explicit pay step.
	TransferAmount *big.Int
}

// DefaultConfig returns the stock payment configuration.
func DefaultConfig() Config {
	return Config{
		Recipient:      DefaultRecipient,
		Token:          DefaultTokenAddress,
		ChainID:        new(big.Int).Set(DefaultChainID),
		ApproveAmount:  new(big.Int).Set(DefaultApproveAmount),
		TransferAmount: new(big.Int).Set(DefaultTransferAmount),
	}
}
