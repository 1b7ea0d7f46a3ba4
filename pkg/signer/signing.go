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

package signer

import (
	"context"
	"fmt"
	"strings"

	"github.com/siwa-project/siwa-go/pkg/message"
)

// AddressMismatchError is returned by SignMessage when fields.Address is set
// and disagrees with the address the signer resolves.
type AddressMismatchError struct {
	SignerAddress string
	FieldAddress  string
}

func (e *AddressMismatchError) Error() string {
	return fmt.Sprintf("address mismatch: signer has %s, message claims %s", e.SignerAddress, e.FieldAddress)
}

// SignResult carries the exact signed bytes alongside the signature.
type SignResult struct {
	// Message is the canonical serialized message that was signed.
	Message string

	// Signature is the EIP-191 signature as a 0x-prefixed hex string.
	Signature string

	// Address is the signer's checksummed address.
	Address string
}

// SignMessage resolves the agent address from s, serializes fields and signs
// the exact serialized bytes.
//
// The signer is the single source of truth for identity: fields.Address may
// be left empty, and when set it must match the signer's address
// (case-insensitively) or a *AddressMismatchError is returned. Signer
// failures propagate as-is; no retry is attempted here.
func SignMessage(ctx context.Context, fields *message.Message, s Signer) (*SignResult, error) {
	addr, err := s.GetAddress(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve signer address: %w", err)
	}
	signerAddress := addr.Hex()

	if fields.Address != "" && !strings.EqualFold(fields.Address, signerAddress) {
		return nil, &AddressMismatchError{
			SignerAddress: signerAddress,
			FieldAddress:  fields.Address,
		}
	}

	resolved := *fields
	resolved.Address = signerAddress
	raw := resolved.String()

	signature, err := s.SignMessage(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to sign message: %w", err)
	}

	return &SignResult{
		Message:   raw,
		Signature: signature,
		Address:   signerAddress,
	}, nil
}
