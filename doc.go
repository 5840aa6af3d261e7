// Package solstudio implements the wallet, payment, and deployment
// orchestration behind a browser-style contract workbench.
//
// The package drives a multi-step flow against an injected wallet provider
// and a fixed ERC-20 token contract: connect to the wallet, verify (and if
// needed switch) the active chain, grant a standing token approval, and on
// an explicit user action transfer the fee and trigger a deployment. Every
// step can fail or be rejected, and every outcome is recorded on a shared,
// newest-first activity log.
//
// # Basic Usage
//
// Construct a Studio around a Provider and walk the flow:
//
//	studio := solstudio.New(provider)
//
//	// Connect; on success a standing approval is requested automatically.
//	if _, err := studio.Wallet.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pay the deployment fee and run the deployer.
//	rec, err := studio.Payments.PayAndDeploy(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("deployed at", rec.Address)
//
//	for _, e := range studio.Logs.Entries() {
//	    fmt.Printf("[%s] %s %s\n", e.Stamp, e.Kind, e.Message)
//	}
//
// # Providers
//
// Provider is the capability surface of a wallet: account access, chain
// inspection and switching, and signer derivation. Two implementations
// matter in practice:
//
//   - A fake provider in tests, scripting every outcome (rejection,
//     unrecognized chain, failed confirmation).
//
//   - RPCProvider, which binds a go-ethereum client and a local private
//     key into the same surface for use against a real node.
//
// # Status Machine
//
// Payment progress is a single PaymentStatus value transitioned only by the
// orchestrator: Idle -> Approving -> Idle on the silent approval, and
// Idle -> Confirming -> Success on the explicit pay step. Failures land in
// StatusError with the reason retained; the error state is sticky until the
// next operation is started. Overlapping operations are rejected with
// ErrBusy rather than racing the provider.
//
// # Stand-ins
//
// Deployment and compilation are function boundaries (Deployer, Compiler)
// with simulated defaults: a fixed delay, then a fabricated result. A real
// chain submission or solc pipeline can be substituted without touching the
// orchestrator's sequencing.
package solstudio
