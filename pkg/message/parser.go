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
	"strconv"
	"strings"
)

// ParseMessage parses a canonical SIWA plaintext message back into its
// structured form.
//
// The first line must end in HeaderSuffix with a non-empty domain before it,
// and the second line must be a 0x-prefixed 42 character address. A blank
// third line opens the statement block, which runs until the next blank line
// or a line starting with "URI: ". Remaining lines are "<key>: <value>"
// pairs; unrecognized keys are ignored so that newer message revisions stay
// parseable.
//
// Agent ID and Chain ID must be base-10 integers when present; anything else
// is a format error. Missing optional keys keep their zero values, except
// Version which defaults to "1".
func ParseMessage(raw string) (*Message, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return nil, ErrMessageTooShort
	}

	domain, ok := strings.CutSuffix(lines[0], HeaderSuffix)
	if !ok || domain == "" {
		return nil, ErrInvalidHeader
	}

	address := lines[1]
	if !strings.HasPrefix(address, "0x") || len(address) != 42 {
		return nil, ErrInvalidAddress
	}

	fieldMap := make(map[string]string)
	var statement string
	var stmtLines []string
	inStatement := false

	for i := 2; i < len(lines); i++ {
		line := lines[i]

		if i == 2 && line == "" {
			inStatement = true
			continue
		}

		if inStatement {
			if line == "" || strings.HasPrefix(line, "URI: ") {
				inStatement = false
				statement = strings.TrimSpace(strings.Join(stmtLines, "\n"))
				if strings.HasPrefix(line, "URI: ") {
					key, value, _ := strings.Cut(line, ": ")
					fieldMap[key] = value
				}
				continue
			}
			stmtLines = append(stmtLines, line)
			continue
		}

		if key, value, found := strings.Cut(line, ": "); found {
			fieldMap[key] = value
		}
	}

	agentID, err := parseUintField(fieldMap, "Agent ID")
	if err != nil {
		return nil, err
	}
	chainID, err := parseUintField(fieldMap, "Chain ID")
	if err != nil {
		return nil, err
	}

	version, ok := fieldMap["Version"]
	if !ok {
		version = DefaultVersion
	}

	return &Message{
		Domain:         domain,
		Address:        address,
		Statement:      statement,
		URI:            fieldMap["URI"],
		Version:        version,
		AgentID:        agentID,
		AgentRegistry:  fieldMap["Agent Registry"],
		ChainID:        chainID,
		Nonce:          fieldMap["Nonce"],
		IssuedAt:       fieldMap["Issued At"],
		ExpirationTime: fieldMap["Expiration Time"],
		NotBefore:      fieldMap["Not Before"],
		RequestID:      fieldMap["Request ID"],
	}, nil
}

func parseUintField(fields map[string]string, key string) (uint64, error) {
	value, ok := fields[key]
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errInvalidNumericField(key, value)
	}
	return n, nil
}
