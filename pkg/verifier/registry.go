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
	"errors"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidRegistry is returned by ParseRegistry for anything that is not
// "eip155:<chainId>:<contractAddress>".
var ErrInvalidRegistry = errors.New("siwa: agent registry must be \"eip155:<chainId>:<contractAddress>\"")

// ParseRegistry splits a composite registry identifier of the form
// "eip155:<chainId>:<contractAddress>" into its parts.
func ParseRegistry(registry string) (chainID uint64, contract common.Address, err error) {
	parts := strings.Split(registry, ":")
	if len(parts) != 3 || parts[0] != "eip155" {
		return 0, common.Address{}, ErrInvalidRegistry
	}

	chainID, parseErr := strconv.ParseUint(parts[1], 10, 64)
	if parseErr != nil {
		return 0, common.Address{}, ErrInvalidRegistry
	}

	if !common.IsHexAddress(parts[2]) {
		return 0, common.Address{}, ErrInvalidRegistry
	}

	return chainID, common.HexToAddress(parts[2]), nil
}
