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

// VerifiedLevel records how far the pipeline got before producing a result.
type VerifiedLevel string

const (
	// VerifiedOffline means the result was produced before any chain call.
	VerifiedOffline VerifiedLevel = "offline"

	// VerifiedOnchain means on-chain ownership resolution was reached.
	VerifiedOnchain VerifiedLevel = "onchain"
)

// SignerType classifies the authenticated account.
type SignerType string

const (
	// SignerTypeEOA is an externally-owned account (no deployed code).
	SignerTypeEOA SignerType = "eoa"

	// SignerTypeSCA is a smart-contract account (deployed code present).
	SignerTypeSCA SignerType = "sca"
)

// Result is the typed outcome of a verification. Expected authentication
// failures are values of this type, never returned errors.
type Result struct {
	Valid         bool          `json:"valid"`
	Address       string        `json:"address"`
	AgentID       uint64        `json:"agent_id"`
	AgentRegistry string        `json:"agent_registry"`
	ChainID       uint64        `json:"chain_id"`
	Verified      VerifiedLevel `json:"verified"`

	// SignerType is set on success when classification succeeded; empty
	// means unknown.
	SignerType SignerType `json:"signer_type,omitempty"`

	// Code and Error are set only when Valid is false.
	Code  ErrorCode `json:"code,omitempty"`
	Error string    `json:"error,omitempty"`
}
