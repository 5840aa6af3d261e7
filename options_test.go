package solstudio

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestWithConfig(t *testing.T) {
	cfg := Config{
		Recipient:      common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Token:          common.HexToAddress("0x2222222222222222222222222222222222222222"),
		ChainID:        big.NewInt(11155111),
		ApproveAmount:  big.NewInt(1000),
		TransferAmount: big.NewInt(10),
	}

	s := New(newFakeProvider(), WithConfig(cfg))

	got := s.Config()
	if got.Recipient != cfg.Recipient || got.Token != cfg.Token {
		t.Error("WithConfig should replace the payment targets")
	}
	if got.ChainID.Cmp(cfg.ChainID) != 0 {
		t.Errorf("Expected chain %v, got %v", cfg.ChainID, got.ChainID)
	}
	if s.Payments.Token().Address() != cfg.Token {
		t.Error("The token binding should follow the configured address")
	}
}

func TestWithDeployer(t *testing.T) {
	p := newFakeProvider()
	dep := &countingDeployer{}
	s := New(p, WithDeployer(dep))

	if _, err := s.Wallet.Connect(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Payments.PayAndDeploy(context.Background()); err != nil {
		t.Fatal(err)
	}

	if dep.count() != 1 {
		t.Errorf("Substituted deployer should run, got %d calls", dep.count())
	}
}

func TestWithCompiler(t *testing.T) {
	s := New(newFakeProvider(), WithCompiler(&instantCompiler{}))

	artifact, err := s.Compile(context.Background())
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if artifact.Name != "MyContract.sol" {
		t.Errorf("Expected the substituted compiler's artifact, got %q", artifact.Name)
	}
}

func TestWithSeedFiles(t *testing.T) {
	t.Run("replaces the seed", func(t *testing.T) {
		s := New(newFakeProvider(), WithSeedFiles(
			FileItem{Name: "A.sol", Content: "a"},
			FileItem{Name: "B.sol", Content: "b"},
		))

		if s.Files.Len() != 2 {
			t.Fatalf("Expected 2 files, got %d", s.Files.Len())
		}
		active, err := s.Files.Active()
		if err != nil {
			t.Fatal(err)
		}
		if active.Name != "A.sol" {
			t.Errorf("Expected the first seed selected, got %q", active.Name)
		}
	})

	t.Run("empty seed starts empty", func(t *testing.T) {
		s := New(newFakeProvider(), WithSeedFiles())
		if s.Files.Len() != 0 {
			t.Errorf("Expected an empty store, got %d files", s.Files.Len())
		}
	})
}
