package signer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Signer abstracts the wallet holding the agent's key.
//
// Implementations:
//   - LocalSigner: in-process secp256k1 private key
//   - KeyringProxySigner: remote keyring proxy reached over HTTP
type Signer interface {
	// GetAddress returns the account address controlled by this signer.
	GetAddress(ctx context.Context) (common.Address, error)

	// SignMessage signs text with EIP-191 personal-sign semantics and
	// returns the 65-byte signature as a 0x-prefixed hex string.
	SignMessage(ctx context.Context, message string) (string, error)
}
