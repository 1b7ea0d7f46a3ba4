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

package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwa-project/siwa-go/pkg/verifier"
)

const testRegistry = "eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73"

func validResult() verifier.Result {
	return verifier.Result{
		Valid:         true,
		Address:       "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		AgentID:       999,
		AgentRegistry: testRegistry,
		ChainID:       84532,
		Verified:      verifier.VerifiedOnchain,
		SignerType:    verifier.SignerTypeEOA,
	}
}

func TestBuild_Authenticated(t *testing.T) {
	// Test Case 1: valid result maps to "authenticated" without skill or
	// action noise

	resp := Build(validResult(), DefaultSkillRef)

	assert.Equal(t, StatusAuthenticated, resp.Status)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", resp.Address)
	assert.Equal(t, uint64(999), resp.AgentID)
	assert.Equal(t, testRegistry, resp.AgentRegistry)
	assert.Equal(t, uint64(84532), resp.ChainID)
	assert.Equal(t, verifier.VerifiedOnchain, resp.Verified)
	assert.Equal(t, verifier.SignerTypeEOA, resp.SignerType)
	assert.Nil(t, resp.Action)
	assert.Nil(t, resp.Skill)
	assert.Empty(t, resp.Code)
}

func TestBuild_NotRegistered(t *testing.T) {
	// Test Case 2: NOT_REGISTERED maps to "not_registered" with a
	// populated register action

	result := validResult()
	result.Valid = false
	result.Code = verifier.CodeNotRegistered
	result.Error = "agent is not registered on the ERC-8004 Identity Registry"
	result.SignerType = ""

	resp := Build(result, DefaultSkillRef)

	assert.Equal(t, StatusNotRegistered, resp.Status)
	assert.Equal(t, verifier.CodeNotRegistered, resp.Code)
	require.NotNil(t, resp.Skill)
	assert.Equal(t, DefaultSkillRef, *resp.Skill)

	require.NotNil(t, resp.Action)
	assert.Equal(t, "register", resp.Action.Type)
	assert.NotEmpty(t, resp.Action.Message)
	assert.Len(t, resp.Action.Steps, 6)
	assert.Equal(t, "0x8004AA63c570c570eBF15376c0dB199918BD9e73", resp.Action.RegistryAddress)
	assert.Equal(t, uint64(84532), resp.Action.ChainID)
}

func TestBuild_NotRegistered_ChainIDFromRegistry(t *testing.T) {
	// Test Case 3: zero chain id falls back to the registry's second part

	result := validResult()
	result.Valid = false
	result.Code = verifier.CodeNotRegistered
	result.ChainID = 0

	resp := Build(result, DefaultSkillRef)
	require.NotNil(t, resp.Action)
	assert.Equal(t, uint64(84532), resp.Action.ChainID)
}

func TestBuild_NotRegistered_MalformedRegistry(t *testing.T) {
	// Test Case 4: malformed registry yields hints without a contract

	result := validResult()
	result.Valid = false
	result.Code = verifier.CodeNotRegistered
	result.AgentRegistry = "garbage"
	result.ChainID = 0

	resp := Build(result, DefaultSkillRef)
	require.NotNil(t, resp.Action)
	assert.Empty(t, resp.Action.RegistryAddress)
	assert.Zero(t, resp.Action.ChainID)
}

func TestBuild_Rejected(t *testing.T) {
	// Test Case 5: every other failure maps to "rejected" and keeps the
	// verifier's error text

	result := validResult()
	result.Valid = false
	result.Code = verifier.CodeDomainMismatch
	result.Error = "domain mismatch: expected a, got b"
	result.Verified = verifier.VerifiedOffline
	result.SignerType = ""

	resp := Build(result, DefaultSkillRef)

	assert.Equal(t, StatusRejected, resp.Status)
	assert.Equal(t, verifier.CodeDomainMismatch, resp.Code)
	assert.Equal(t, result.Error, resp.Error)
	assert.Equal(t, verifier.VerifiedOffline, resp.Verified)
	assert.Nil(t, resp.Action)
	require.NotNil(t, resp.Skill)
}

func TestBuild_JSONShape(t *testing.T) {
	// Test Case 6: wire form uses snake_case and omits absent fields

	data, err := json.Marshal(Build(validResult(), DefaultSkillRef))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "authenticated", decoded["status"])
	assert.Contains(t, decoded, "agent_id")
	assert.Contains(t, decoded, "agent_registry")
	assert.Contains(t, decoded, "signer_type")
	assert.NotContains(t, decoded, "code")
	assert.NotContains(t, decoded, "action")
}
