package solstudio

import (
	"context"
)

// Studio wires the workbench components together: the source file store,
// the shared activity log, the wallet session, and the payment
// orchestrator. The editor and tree surfaces live outside this package and
// talk to Files and Logs directly.
type Studio struct {
	Files    *FileStore
	Logs     *LogSink
	Wallet   *WalletSession
	Payments *PaymentOrchestrator

	cfg      Config
	deployer Deployer
	compiler Compiler
	seed     []FileItem
}

// New creates a Studio around the given wallet provider. With no options it
// uses the stock payment configuration, the simulated deployer and stub
// compiler, and a single template source file.
func New(provider Provider, opts ...Option) *Studio {
	s := &Studio{
		Logs:     NewLogSink(),
		cfg:      DefaultConfig(),
		deployer: NewSimulatedDeployer(DefaultDeployDelay),
		compiler: NewStubCompiler(DefaultCompileDelay),
		seed: []FileItem{
			{Name: "MyContract" + SourceSuffix, Content: DefaultTemplate},
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Files = NewFileStore(s.seed...)
	s.Payments = NewPaymentOrchestrator(provider, s.cfg, s.Logs, s.deployer)

	// Connect auto-initiates the standing approval with the fresh signer.
	// The ordering is load-bearing: approval is requested before any deploy
	// action can run.
	s.Wallet = NewWalletSession(provider, s.cfg, s.Logs, func(ctx context.Context, signer Signer) {
		// Failures are logged and land in payment status; they do not undo
		// the connect.
		_ = s.Payments.AutoApprove(ctx, signer)
	})
	s.Payments.bindWallet(s.Wallet)

	return s
}

// Config returns the payment configuration in effect.
func (s *Studio) Config() Config {
	return s.cfg
}

// Compile runs the compiler over the active source file, logging the
// outcome. Independent of the payment path.
func (s *Studio) Compile(ctx context.Context) (*Artifact, error) {
	file, err := s.Files.Active()
	if err != nil {
		s.Logs.Error("Compile failed: %v", err)
		return nil, err
	}

	s.Logs.Info("Compiling %s...", file.Name)

	artifact, err := s.compiler.Compile(ctx, file)
	if err != nil {
		s.Logs.Error("Compile failed: %v", err)
		return nil, err
	}

	s.Logs.Success("%s compiled successfully", artifact.Name)
	return artifact, nil
}
