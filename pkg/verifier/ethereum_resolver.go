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

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ERC-721 ownerOf is all the registry surface the pipeline needs.
const ownerOfABI = `[{"name":"ownerOf","type":"function","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]}]`

// ContractCaller is the slice of ethclient.Client the resolver uses.
type ContractCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// EthResolver implements ChainResolver against an Ethereum JSON-RPC node
type EthResolver struct {
	caller ContractCaller
	abi    abi.ABI
}

// NewEthResolver creates a resolver on top of an existing caller, typically
// an *ethclient.Client
func NewEthResolver(caller ContractCaller) (*EthResolver, error) {
	parsed, err := abi.JSON(strings.NewReader(ownerOfABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ownerOf ABI: %w", err)
	}
	return &EthResolver{caller: caller, abi: parsed}, nil
}

// DialEthResolver connects to the JSON-RPC endpoint at rpcURL and returns a
// resolver backed by it
func DialEthResolver(ctx context.Context, rpcURL string) (*EthResolver, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}
	return NewEthResolver(client)
}

// OwnerOf calls ownerOf(agentID) on the registry contract. A revert for a
// nonexistent token surfaces as an error.
func (r *EthResolver) OwnerOf(ctx context.Context, registry common.Address, agentID *big.Int) (common.Address, error) {
	data, err := r.abi.Pack("ownerOf", agentID)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack ownerOf call: %w", err)
	}

	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &registry, Data: data}, nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("ownerOf call failed: %w", err)
	}
	if len(out) == 0 {
		return common.Address{}, fmt.Errorf("ownerOf returned no data")
	}

	var owner common.Address
	if err := r.abi.UnpackIntoInterface(&owner, "ownerOf", out); err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack ownerOf result: %w", err)
	}
	return owner, nil
}

// HasCode reports whether account has deployed contract code at the latest
// block
func (r *EthResolver) HasCode(ctx context.Context, account common.Address) (bool, error) {
	code, err := r.caller.CodeAt(ctx, account, nil)
	if err != nil {
		return false, fmt.Errorf("failed to fetch code for %s: %w", account.Hex(), err)
	}
	return len(code) > 0, nil
}
