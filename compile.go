package solstudio

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Artifact is the result of compiling one source file.
type Artifact struct {
	// Name is the source file the artifact was built from.
	Name string

	// BytecodeHash identifies the produced bytecode. The stub derives it
	// from the source text; a real compiler would hash actual bytecode.
	BytecodeHash common.Hash
}

// Compiler is the compilation boundary. Independent of the payment path; a
// real solc pipeline can replace the stub without touching callers.
type Compiler interface {
	Compile(ctx context.Context, file FileItem) (*Artifact, error)
}

// DefaultCompileDelay is how long the stub pretends to compile.
const DefaultCompileDelay = 2 * time.Second

// StubCompiler is the stand-in compiler: a fixed delay and an artifact with
// no semantic checking of the source whatsoever.
type StubCompiler struct {
	delay time.Duration
}

// NewStubCompiler creates a stub with the given artificial delay.
func NewStubCompiler(delay time.Duration) *StubCompiler {
	return &StubCompiler{delay: delay}
}

// Compile waits out the delay and reports the file compiled.
func (c *StubCompiler) Compile(ctx context.Context, file FileItem) (*Artifact, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.delay):
	}

	return &Artifact{
		Name:         file.Name,
		BytecodeHash: crypto.Keccak256Hash([]byte(file.Content)),
	}, nil
}
