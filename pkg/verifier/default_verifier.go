// Copyright (C) 2025 SIWA Project
//
// This file is part of siwa-go.
//
// siwa-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// siwa-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with siwa-go.  If not, see <https://www.gnu.org/licenses/>.

package verifier

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/siwa-project/siwa-go/pkg/message"
)

// Options customizes a Verifier. The zero value is usable.
type Options struct {
	// RegistryAddress, when non-empty, overrides the contract address
	// embedded in the message's Agent Registry field for the ownership
	// lookup.
	RegistryAddress string

	// Recover replaces the signature recovery function. Nil means
	// RecoverEIP191.
	Recover RecoverFunc

	// Now replaces the time source for the validity window. Nil means
	// time.Now.
	Now func() time.Time
}

// Verifier runs the server-side SIWA verification pipeline.
//
// The stages run strictly in order and the first failure wins: parse,
// signature recovery, address consistency, domain binding, nonce, time
// window, registry format, on-chain ownership, signer-type classification.
// Domain binding runs before nonce validation so a replayed cross-domain
// message never consumes the legitimate nonce, and no chain RPC is spent on
// a request that already failed offline.
type Verifier struct {
	resolver ChainResolver
	opts     Options
}

// NewVerifier creates a Verifier using resolver for on-chain lookups.
// opts may be nil.
func NewVerifier(resolver ChainResolver, opts *Options) *Verifier {
	v := &Verifier{resolver: resolver}
	if opts != nil {
		v.opts = *opts
	}
	if v.opts.Recover == nil {
		v.opts.Recover = RecoverEIP191
	}
	if v.opts.Now == nil {
		v.opts.Now = time.Now
	}
	return v
}

// Verify checks rawMessage and signature against expectedDomain, the nonce
// validator and the on-chain registry, and reports the outcome as a Result.
//
// Verify is total: expected authentication failures come back as
// Valid=false results with a specific ErrorCode, and any unexpected panic
// is converted to CodeVerificationFailed rather than crossing this boundary.
func (v *Verifier) Verify(ctx context.Context, rawMessage, signature, expectedDomain string, validateNonce NonceValidator) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Valid:    false,
				Verified: VerifiedOffline,
				Code:     CodeVerificationFailed,
				Error:    fmt.Sprintf("unexpected failure: %v", r),
			}
		}
	}()

	// 1. Parse. A message that does not parse yields no trustworthy
	// fields, so the failure result stays empty apart from the code.
	fields, err := message.ParseMessage(rawMessage)
	if err != nil {
		return Result{
			Valid:    false,
			Verified: VerifiedOffline,
			Code:     CodeVerificationFailed,
			Error:    err.Error(),
		}
	}

	fail := func(verified VerifiedLevel, code ErrorCode, errMsg string) Result {
		return Result{
			Valid:         false,
			Address:       fields.Address,
			AgentID:       fields.AgentID,
			AgentRegistry: fields.AgentRegistry,
			ChainID:       fields.ChainID,
			Verified:      verified,
			Code:          code,
			Error:         errMsg,
		}
	}

	// 2. Signature recovery. Nothing parsed from the message is trusted
	// until the signature over the exact bytes checks out.
	recovered, err := v.opts.Recover(rawMessage, signature)
	if err != nil {
		return fail(VerifiedOffline, CodeInvalidSignature, "invalid signature")
	}

	// 3. Recovered signer must be the address the message claims.
	if !strings.EqualFold(recovered.Hex(), fields.Address) {
		return fail(VerifiedOffline, CodeInvalidSignature,
			fmt.Sprintf("signature recovered %s, expected %s", recovered.Hex(), fields.Address))
	}

	// 4. Domain binding, before nonce consumption.
	if fields.Domain != expectedDomain {
		return fail(VerifiedOffline, CodeDomainMismatch,
			fmt.Sprintf("domain mismatch: expected %s, got %s", expectedDomain, fields.Domain))
	}

	// 5. Nonce validation. The callback consumes the nonce as a side
	// effect on success.
	ok, err := validateNonce(ctx, fields.Nonce)
	if err != nil {
		return fail(VerifiedOffline, CodeVerificationFailed,
			fmt.Sprintf("nonce validation failed: %v", err))
	}
	if !ok {
		return fail(VerifiedOffline, CodeInvalidNonce, "invalid or consumed nonce")
	}

	// 6. Time window.
	now := v.opts.Now().UTC()
	if fields.ExpirationTime != "" {
		exp, err := time.Parse(time.RFC3339, fields.ExpirationTime)
		if err != nil {
			return fail(VerifiedOffline, CodeVerificationFailed,
				fmt.Sprintf("invalid Expiration Time: %v", err))
		}
		if now.After(exp) {
			return fail(VerifiedOffline, CodeMessageExpired, "message expired")
		}
	}
	if fields.NotBefore != "" {
		nbf, err := time.Parse(time.RFC3339, fields.NotBefore)
		if err != nil {
			return fail(VerifiedOffline, CodeVerificationFailed,
				fmt.Sprintf("invalid Not Before: %v", err))
		}
		if now.Before(nbf) {
			return fail(VerifiedOffline, CodeMessageNotYetValid, "message not yet valid (not before)")
		}
	}

	// 7. Registry format.
	_, registryAddr, err := ParseRegistry(fields.AgentRegistry)
	if err != nil {
		return fail(VerifiedOffline, CodeInvalidRegistryFormat, "invalid agent registry format")
	}
	if v.opts.RegistryAddress != "" {
		registryAddr = common.HexToAddress(v.opts.RegistryAddress)
	}

	// 8. On-chain ownership. Resolver errors, including a revert for a
	// nonexistent token, all mean the agent is not registered.
	owner, err := v.resolver.OwnerOf(ctx, registryAddr, new(big.Int).SetUint64(fields.AgentID))
	if err != nil {
		return fail(VerifiedOnchain, CodeNotRegistered,
			"agent is not registered on the ERC-8004 Identity Registry")
	}
	if owner != recovered {
		return fail(VerifiedOnchain, CodeNotOwner, "signer is not the owner of this agent")
	}

	// 9. Signer-type classification, informational only. A failed lookup
	// leaves the type unknown rather than failing the verification.
	signerType := SignerTypeEOA
	if hasCode, err := v.resolver.HasCode(ctx, common.HexToAddress(fields.Address)); err != nil {
		signerType = ""
	} else if hasCode {
		signerType = SignerTypeSCA
	}

	// 10. Success.
	return Result{
		Valid:         true,
		Address:       recovered.Hex(),
		AgentID:       fields.AgentID,
		AgentRegistry: fields.AgentRegistry,
		ChainID:       fields.ChainID,
		Verified:      VerifiedOnchain,
		SignerType:    signerType,
	}
}
