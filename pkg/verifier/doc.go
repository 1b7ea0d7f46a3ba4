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

// Package verifier implements the server-side SIWA verification pipeline.
//
// # Verifying a sign-in
//
//	resolver, err := verifier.DialEthResolver(ctx, "https://sepolia.base.org")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := verifier.NewVerifier(resolver, nil)
//	result := v.Verify(ctx, rawMessage, signature, "example.com", nonceStore.Consume)
//	if !result.Valid {
//	    // result.Code and result.Error say why
//	}
//
// # Stage order is security-relevant
//
// The pipeline runs parse, signature recovery, address consistency, domain
// binding, nonce validation, time window, registry format, on-chain
// ownership and signer-type classification, strictly in that order, and the
// first failing stage wins:
//
//   - the signature is verified before any parsed field is trusted
//   - the domain is checked before the nonce so a message replayed against
//     the wrong relying party never consumes the legitimate nonce
//   - all offline checks run before the chain RPC so no network cost is
//     spent on a request that was never going to pass
//
// # Collaborators
//
// Nonce storage, signature recovery and chain access are injected:
// NonceValidator owns consume-once nonce semantics, ChainResolver answers
// ownerOf and code lookups (EthResolver is the ethclient-backed
// implementation), and RecoverFunc recovers the signer address
// (RecoverEIP191 by default). The pipeline runs them sequentially per call
// and holds no shared state, so one Verifier may serve concurrent requests.
//
// # Failure semantics
//
// Verify never returns an error and never panics across its boundary.
// Expected failures produce a Result with Valid=false and one of the
// ErrorCode values; anything unexpected becomes CodeVerificationFailed. The
// Verified field records whether on-chain resolution was reached ("onchain")
// or the request failed before any chain call ("offline").
package verifier
