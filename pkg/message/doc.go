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

// Package message implements the SIWA (Sign In With Agent) plaintext message
// codec.
//
// A SIWA message is the canonical authentication claim an agent signs with
// its wallet key. The format follows the EIP-4361 (Sign-In with Ethereum)
// layout, extended with the agent identity lines:
//
//	example.com wants you to sign in with your Agent account:
//	0x70997970C51812dc3A010C7d01b50e0d17dc79C8
//
//	I accept the Terms of Service.
//
//	URI: https://example.com/login
//	Version: 1
//	Agent ID: 999
//	Agent Registry: eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73
//	Chain ID: 84532
//	Nonce: dGhpc2lzYW5vbmNl
//	Issued At: 2025-06-01T12:00:00Z
//
// Message is the structured form; Message.String serializes it and
// ParseMessage parses it back. The pair is bijective for every field that is
// present, which is what makes the signature over the serialized bytes
// verifiable by an independent implementation: both sides must produce the
// exact same bytes, including line order, the ": " field separator and the
// blank-line framing around the (possibly absent) statement block.
//
// The package also provides GenerateNonce for replay-protection tokens and
// NewRequestID for request correlation.
package message
