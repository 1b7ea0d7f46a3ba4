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

// ErrorCode identifies why a verification failed. The set is closed; codes
// past CodeNotOwner are reserved for extension checks and are never emitted
// by the base pipeline.
type ErrorCode string

const (
	CodeInvalidSignature      ErrorCode = "INVALID_SIGNATURE"
	CodeDomainMismatch        ErrorCode = "DOMAIN_MISMATCH"
	CodeInvalidNonce          ErrorCode = "INVALID_NONCE"
	CodeMessageExpired        ErrorCode = "MESSAGE_EXPIRED"
	CodeMessageNotYetValid    ErrorCode = "MESSAGE_NOT_YET_VALID"
	CodeInvalidRegistryFormat ErrorCode = "INVALID_REGISTRY_FORMAT"
	CodeNotRegistered         ErrorCode = "NOT_REGISTERED"
	CodeNotOwner              ErrorCode = "NOT_OWNER"

	// Reserved for extension checks (agent metadata, trust policies)
	CodeAgentNotActive    ErrorCode = "AGENT_NOT_ACTIVE"
	CodeMissingService    ErrorCode = "MISSING_SERVICE"
	CodeMissingTrustModel ErrorCode = "MISSING_TRUST_MODEL"
	CodeLowReputation     ErrorCode = "LOW_REPUTATION"
	CodeCustomCheckFailed ErrorCode = "CUSTOM_CHECK_FAILED"

	// CodeVerificationFailed covers unparseable messages and unexpected
	// pipeline failures.
	CodeVerificationFailed ErrorCode = "VERIFICATION_FAILED"
)
