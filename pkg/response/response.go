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
	"strconv"
	"strings"

	"github.com/siwa-project/siwa-go/pkg/verifier"
)

// Status collapses every verification outcome into the three states
// platforms branch on.
type Status string

const (
	StatusAuthenticated Status = "authenticated"
	StatusNotRegistered Status = "not_registered"
	StatusRejected      Status = "rejected"
)

// SkillRef points an agent at the SIWA skill/SDK. It is injected
// configuration, not process-wide state; DefaultSkillRef matches the
// canonical skill published at siwa.id.
type SkillRef struct {
	Name    string `json:"name"`
	Install string `json:"install"`
	URL     string `json:"url"`
}

// DefaultSkillRef is the canonical SIWA skill reference.
var DefaultSkillRef = SkillRef{
	Name:    "siwa",
	Install: "pip install siwa",
	URL:     "https://siwa.id/skill.md",
}

// Action tells an unregistered agent how to remediate.
type Action struct {
	Type            string   `json:"type"`
	Message         string   `json:"message"`
	Skill           SkillRef `json:"skill"`
	Steps           []string `json:"steps"`
	RegistryAddress string   `json:"registry_address,omitempty"`
	ChainID         uint64   `json:"chain_id,omitempty"`
}

// Response is the platform-facing envelope, forwarded verbatim to the
// calling platform or agent.
type Response struct {
	Status        Status                 `json:"status"`
	Address       string                 `json:"address,omitempty"`
	AgentID       uint64                 `json:"agent_id"`
	AgentRegistry string                 `json:"agent_registry,omitempty"`
	ChainID       uint64                 `json:"chain_id,omitempty"`
	Verified      verifier.VerifiedLevel `json:"verified,omitempty"`
	SignerType    verifier.SignerType    `json:"signer_type,omitempty"`
	Code          verifier.ErrorCode     `json:"code,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Action        *Action                `json:"action,omitempty"`
	Skill         *SkillRef              `json:"skill,omitempty"`
}

// registrationSteps is the fixed remediation sequence for unregistered
// agents.
var registrationSteps = []string{
	"Install the SDK: pip install siwa",
	"Create a wallet: from siwa import create_wallet; wallet = create_wallet()",
	"Fund the wallet with ETH on the target chain for gas fees",
	"Build ERC-8004 registration metadata (JSON with name, description, services, active: true)",
	"Register onchain: call register(agent_uri) on the Identity Registry contract",
	"Retry SIWA sign-in",
}

// Build maps a verification result to the response envelope. It is pure and
// total: every Result value maps to exactly one of the three statuses.
func Build(result verifier.Result, skill SkillRef) Response {
	resp := Response{
		Address:       result.Address,
		AgentID:       result.AgentID,
		AgentRegistry: result.AgentRegistry,
		ChainID:       result.ChainID,
		Verified:      result.Verified,
		SignerType:    result.SignerType,
	}

	if result.Valid {
		resp.Status = StatusAuthenticated
		return resp
	}

	if result.Code == verifier.CodeNotRegistered {
		registryAddress, chainID := registryHints(result)

		resp.Status = StatusNotRegistered
		resp.Code = result.Code
		resp.Error = "Agent is not registered on the ERC-8004 Identity Registry."
		resp.Skill = &skill
		resp.Action = &Action{
			Type:            "register",
			Message:         "This address is not registered as an ERC-8004 agent. Install the SIWA SDK and register before signing in.",
			Skill:           skill,
			Steps:           registrationSteps,
			RegistryAddress: registryAddress,
			ChainID:         chainID,
		}
		return resp
	}

	resp.Status = StatusRejected
	resp.Code = result.Code
	resp.Error = result.Error
	resp.Skill = &skill
	return resp
}

// registryHints re-derives the registry contract and chain for the
// remediation action from the composite registry identifier.
func registryHints(result verifier.Result) (registryAddress string, chainID uint64) {
	parts := strings.Split(result.AgentRegistry, ":")
	if len(parts) == 3 {
		registryAddress = parts[2]
	}

	chainID = result.ChainID
	if chainID == 0 && len(parts) >= 2 {
		if id, err := strconv.ParseUint(parts[1], 10, 64); err == nil {
			chainID = id
		}
	}
	return registryAddress, chainID
}
