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

package message

import (
	"fmt"
	"strings"
)

// HeaderSuffix is the fixed tail of the first message line; everything before
// it is the relying-party domain.
const HeaderSuffix = " wants you to sign in with your Agent account:"

// DefaultVersion is emitted on the "Version:" line when Message.Version is
// left empty.
const DefaultVersion = "1"

// Message is the structured form of a SIWA authentication claim.
//
// Optional string fields use "" for absent. AgentID and ChainID are required
// for a meaningful claim but carry no in-band "absent" marker; a zero value
// round-trips as 0.
type Message struct {
	// Domain is the relying-party origin requesting the sign-in.
	Domain string

	// Address is the 0x-prefixed, 42 character account address. It is
	// required at parse time; the signing flow fills it in from the signer.
	Address string

	// Statement is an optional human-readable purpose. It may span multiple
	// lines but must not contain blank lines.
	Statement string

	// URI is the resource the sign-in targets.
	URI string

	// Version is the message format version, "1" when empty.
	Version string

	// AgentID is the token ID of the agent in the identity registry.
	AgentID uint64

	// AgentRegistry identifies the registry contract as
	// "eip155:<chainId>:<contractAddress>".
	AgentRegistry string

	// ChainID is the EIP-155 chain the claim is scoped to.
	ChainID uint64

	// Nonce is the single-use replay-protection token.
	Nonce string

	// IssuedAt is an RFC 3339 timestamp.
	IssuedAt string

	// ExpirationTime and NotBefore optionally bound the validity window,
	// RFC 3339.
	ExpirationTime string
	NotBefore      string

	// RequestID is an opaque correlation token.
	RequestID string
}

// String serializes the message into its canonical plaintext form.
//
// The layout is fixed: header line, address line, a blank line, the optional
// statement block, a blank line, then the field lines in declaration order.
// When the statement is absent the two framing blank lines are adjacent; the
// parser relies on that shape, so it is emitted unconditionally.
func (m *Message) String() string {
	var lines []string

	lines = append(lines, m.Domain+HeaderSuffix)
	lines = append(lines, m.Address)
	lines = append(lines, "")

	if m.Statement != "" {
		lines = append(lines, m.Statement)
	}
	lines = append(lines, "")

	version := m.Version
	if version == "" {
		version = DefaultVersion
	}

	lines = append(lines, "URI: "+m.URI)
	lines = append(lines, "Version: "+version)
	lines = append(lines, fmt.Sprintf("Agent ID: %d", m.AgentID))
	lines = append(lines, "Agent Registry: "+m.AgentRegistry)
	lines = append(lines, fmt.Sprintf("Chain ID: %d", m.ChainID))
	lines = append(lines, "Nonce: "+m.Nonce)
	lines = append(lines, "Issued At: "+m.IssuedAt)

	if m.ExpirationTime != "" {
		lines = append(lines, "Expiration Time: "+m.ExpirationTime)
	}
	if m.NotBefore != "" {
		lines = append(lines, "Not Before: "+m.NotBefore)
	}
	if m.RequestID != "" {
		lines = append(lines, "Request ID: "+m.RequestID)
	}

	return strings.Join(lines, "\n")
}
