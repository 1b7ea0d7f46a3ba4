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

// Package siwago provides version information for siwa-go and the protocol
// revisions it implements.
package siwago

const (
	// Version is the current version of siwa-go
	Version = "0.3.0"

	// MessageVersion is the SIWA message format version this library emits
	// and accepts. It appears on the "Version:" line of every message.
	MessageVersion = "1"

	// RegistryERC is the identity registry standard the verifier resolves
	// ownership against.
	RegistryERC = "ERC-8004"
)

// VersionInfo contains detailed version information
type VersionInfo struct {
	SIWAGoVersion  string
	MessageVersion string
	RegistryERC    string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SIWAGoVersion:  Version,
		MessageVersion: MessageVersion,
		RegistryERC:    RegistryERC,
	}
}
