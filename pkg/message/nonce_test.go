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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isURLSafe(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}

func TestGenerateNonce_Uniqueness(t *testing.T) {
	// Test Case 1: 100 successive nonces are all distinct

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		nonce, err := GenerateNonce(DefaultNonceLength)
		require.NoError(t, err)
		assert.False(t, seen[nonce], "nonce %q repeated", nonce)
		seen[nonce] = true
	}
}

func TestGenerateNonce_LengthAndCharset(t *testing.T) {
	// Test Case 2: requested length is honored and output is URL-safe

	for _, length := range []int{8, 16, 24, 48} {
		nonce, err := GenerateNonce(length)
		require.NoError(t, err)
		assert.Len(t, nonce, length)
		assert.True(t, isURLSafe(nonce), "nonce %q contains non URL-safe characters", nonce)
	}
}

func TestGenerateNonce_DefaultLength(t *testing.T) {
	// Test Case 3: non-positive length falls back to the default

	nonce, err := GenerateNonce(0)
	require.NoError(t, err)
	assert.Len(t, nonce, DefaultNonceLength)
}

func TestNewRequestID_Distinct(t *testing.T) {
	// Test Case 4: correlation tokens are distinct and non-empty

	a := NewRequestID()
	b := NewRequestID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestNow_RFC3339UTC(t *testing.T) {
	// Test Case 5: Now emits a parseable RFC 3339 UTC timestamp

	ts, err := time.Parse(time.RFC3339, Now())
	require.NoError(t, err)
	assert.Equal(t, time.UTC, ts.Location())
	assert.WithinDuration(t, time.Now().UTC(), ts, 5*time.Second)
}
