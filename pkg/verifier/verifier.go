package verifier

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NonceValidator reports whether nonce is valid and unconsumed. The callback
// owns nonce storage and is expected to mark the nonce consumed as a side
// effect; the pipeline itself keeps no state. It may block (e.g. on a
// datastore) and must honor ctx cancellation.
type NonceValidator func(ctx context.Context, nonce string) (bool, error)

// ChainResolver answers the two on-chain questions the pipeline asks. The
// caller supplies timeout and retry policy through ctx and the underlying
// client; the pipeline adds none of its own.
type ChainResolver interface {
	// OwnerOf returns the current owner of agentID in the registry
	// contract. Any error, including a revert for a nonexistent token, is
	// treated by the pipeline as "not registered".
	OwnerOf(ctx context.Context, registry common.Address, agentID *big.Int) (common.Address, error)

	// HasCode reports whether account currently has deployed contract code.
	HasCode(ctx context.Context, account common.Address) (bool, error)
}

// RecoverFunc recovers the signing address from a message and its signature.
// RecoverEIP191 is the default; tests and alternative signature schemes can
// inject their own.
type RecoverFunc func(message string, signature string) (common.Address, error)
