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
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistry(t *testing.T) {
	chainID, contract, err := ParseRegistry(testRegistry)
	require.NoError(t, err)
	assert.Equal(t, uint64(84532), chainID)
	assert.Equal(t, common.HexToAddress("0x8004AA63c570c570eBF15376c0dB199918BD9e73"), contract)
}

func TestParseRegistry_Invalid(t *testing.T) {
	for _, registry := range []string{
		"",
		"eip155:84532",
		"eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73:extra",
		"erc721:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73",
		"eip155:base:0x8004AA63c570c570eBF15376c0dB199918BD9e73",
		"eip155:84532:not-an-address",
	} {
		_, _, err := ParseRegistry(registry)
		assert.ErrorIs(t, err, ErrInvalidRegistry, "registry %q", registry)
	}
}
