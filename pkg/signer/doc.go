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

// Package signer provides the agent-side signing flow for SIWA messages.
//
// # Signing a message
//
// Build the message fields, then let SignMessage resolve the address and
// sign the canonical bytes:
//
//	s, _ := signer.NewLocalSignerFromHex("0x...")
//
//	nonce, _ := message.GenerateNonce(message.DefaultNonceLength)
//	fields := &message.Message{
//	    Domain:        "example.com",
//	    URI:           "https://example.com/login",
//	    AgentID:       999,
//	    AgentRegistry: "eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73",
//	    ChainID:       84532,
//	    Nonce:         nonce,
//	    IssuedAt:      message.Now(),
//	}
//
//	result, err := signer.SignMessage(ctx, fields, s)
//	// result.Message, result.Signature, result.Address
//
// The signer is the single source of truth for the agent's identity. Leaving
// fields.Address empty is the normal path; setting it to anything other than
// the signer's own address fails with *AddressMismatchError before any
// signature is produced.
//
// # Backends
//
// LocalSigner holds a secp256k1 key in process and signs with EIP-191
// personal-sign semantics, matching what wallets produce for personal_sign.
//
// KeyringProxySigner keeps the key on a remote keyring proxy and performs a
// round-trip per operation. Both backends accept a context and honor
// cancellation; a canceled context aborts the operation without a result.
//
// # Error handling
//
// Signing errors are local errors returned to the caller (they indicate a
// misconfigured client, not an untrustworthy request). Server-side
// verification failures are reported through the verifier package's typed
// result instead.
package signer
