package solstudio

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestSimulatedDeployer(t *testing.T) {
	t.Run("fabricates a plausible record", func(t *testing.T) {
		d := NewSimulatedDeployer(time.Millisecond)

		rec, err := d.Deploy(context.Background())
		if err != nil {
			t.Fatalf("Deploy() error: %v", err)
		}

		if rec.Address == (common.Address{}) {
			t.Error("Expected a non-zero address")
		}
		if rec.TxHash == (common.Hash{}) {
			t.Error("Expected a non-zero transaction hash")
		}
		if rec.Time.IsZero() {
			t.Error("Expected a completion time")
		}
	})

	t.Run("successive runs differ", func(t *testing.T) {
		d := NewSimulatedDeployer(time.Millisecond)

		a, err := d.Deploy(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		b, err := d.Deploy(context.Background())
		if err != nil {
			t.Fatal(err)
		}

		if a.Address == b.Address {
			t.Error("Fabricated addresses should not repeat")
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		d := NewSimulatedDeployer(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := d.Deploy(ctx); err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}

func TestStubCompiler(t *testing.T) {
	t.Run("reports the file compiled", func(t *testing.T) {
		c := NewStubCompiler(time.Millisecond)
		file := FileItem{Name: "Token.sol", Content: "contract Token {}"}

		artifact, err := c.Compile(context.Background(), file)
		if err != nil {
			t.Fatalf("Compile() error: %v", err)
		}

		if artifact.Name != "Token.sol" {
			t.Errorf("Expected artifact named Token.sol, got %q", artifact.Name)
		}
		want := crypto.Keccak256Hash([]byte(file.Content))
		if artifact.BytecodeHash != want {
			t.Error("Artifact hash should cover the source content")
		}
	})

	t.Run("no semantic checking", func(t *testing.T) {
		c := NewStubCompiler(time.Millisecond)

		// Garbage compiles fine; the stub is an acknowledged stand-in.
		if _, err := c.Compile(context.Background(), FileItem{Name: "X.sol", Content: "not solidity"}); err != nil {
			t.Errorf("Stub must not validate, got %v", err)
		}
	})

	t.Run("honors cancellation", func(t *testing.T) {
		c := NewStubCompiler(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := c.Compile(ctx, FileItem{Name: "X.sol"}); err != context.Canceled {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	})
}
