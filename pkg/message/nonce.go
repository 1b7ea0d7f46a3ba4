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
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultNonceLength is used by GenerateNonce when length is not positive.
const DefaultNonceLength = 16

// GenerateNonce returns a cryptographically random, URL-safe nonce of exactly
// length characters (alphabet: A-Z a-z 0-9 - _).
//
// Each call draws fresh entropy from crypto/rand; there is no shared state,
// so concurrent issuances are independent.
func GenerateNonce(length int) (string, error) {
	if length <= 0 {
		length = DefaultNonceLength
	}

	// length random bytes encode to at least length base64url characters.
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf)[:length], nil
}

// NewRequestID returns an opaque correlation token for the Request ID line.
func NewRequestID() string {
	return uuid.NewString()
}

// Now returns the current time in the form the timestamp fields expect,
// RFC 3339 in UTC.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
