package solstudio

import (
	"context"
	crand "crypto/rand"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Deployment records the outcome of one deployment run.
type Deployment struct {
	// Address is where the contract reports itself deployed.
	Address common.Address

	// TxHash is the deployment transaction hash.
	TxHash common.Hash

	// Time is when the deployment completed.
	Time time.Time
}

// Deployer is the deployment boundary. The orchestrator triggers it exactly
// once per confirmed fee transfer and never inspects how it works, so a real
// chain submission can replace the simulator without touching sequencing.
type Deployer interface {
	Deploy(ctx context.Context) (*Deployment, error)
}

// DefaultDeployDelay is how long the simulator pretends to work.
const DefaultDeployDelay = 3 * time.Second

// SimulatedDeployer is the stand-in deployment step: it waits a fixed delay
// and fabricates a plausible contract address and transaction hash. No
// bytecode is generated and nothing touches a chain.
type SimulatedDeployer struct {
	delay time.Duration
}

// NewSimulatedDeployer creates a simulator with the given artificial delay.
func NewSimulatedDeployer(delay time.Duration) *SimulatedDeployer {
	return &SimulatedDeployer{delay: delay}
}

// Deploy waits out the delay, then returns a fabricated deployment record.
func (d *SimulatedDeployer) Deploy(ctx context.Context) (*Deployment, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(d.delay):
	}

	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, err
	}

	// Shape the fake address like a real create address: last 20 bytes of a
	// keccak image.
	hash := crypto.Keccak256(seed[:])
	return &Deployment{
		Address: common.BytesToAddress(hash[12:]),
		TxHash:  crypto.Keccak256Hash(hash),
		Time:    time.Now(),
	}, nil
}
