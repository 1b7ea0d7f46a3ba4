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

package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siwa-project/siwa-go/pkg/message"
	"github.com/siwa-project/siwa-go/pkg/response"
	"github.com/siwa-project/siwa-go/pkg/signer"
	"github.com/siwa-project/siwa-go/pkg/verifier"
)

const (
	testPrivateKeyHex = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
	testAddressHex    = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testDomain        = "test.example.com"
	testRegistry      = "eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73"
)

// mockResolver answers ownership lookups from fixed values
type mockResolver struct {
	owner    common.Address
	ownerErr error
}

func (m *mockResolver) OwnerOf(ctx context.Context, registry common.Address, agentID *big.Int) (common.Address, error) {
	return m.owner, m.ownerErr
}

func (m *mockResolver) HasCode(ctx context.Context, account common.Address) (bool, error) {
	return false, nil
}

func acceptNonce(ctx context.Context, nonce string) (bool, error) { return true, nil }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func signedHeaders(t *testing.T) (string, string) {
	t.Helper()

	s, err := signer.NewLocalSignerFromHex(testPrivateKeyHex)
	require.NoError(t, err)

	fields := &message.Message{
		Domain:        testDomain,
		Address:       testAddressHex,
		URI:           "https://test.example.com/login",
		Version:       message.DefaultVersion,
		AgentID:       999,
		AgentRegistry: testRegistry,
		ChainID:       84532,
		Nonce:         "abc123def456",
		IssuedAt:      "2025-06-01T12:00:00Z",
	}

	signed, err := signer.SignMessage(context.Background(), fields, s)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString([]byte(signed.Message)), signed.Signature
}

func newTestMiddleware(resolver verifier.ChainResolver) *AuthMiddleware {
	v := verifier.NewVerifier(resolver, nil)
	mw := NewAuthMiddleware(v, testDomain, acceptNonce)
	mw.SetLogger(quietLogger())
	return mw
}

func TestAuthMiddleware_Authenticated(t *testing.T) {
	// Test Case 1: a signed request from the registered owner reaches the
	// handler with the result in context

	mw := newTestMiddleware(&mockResolver{owner: common.HexToAddress(testAddressHex)})

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		result, ok := ResultFromContext(r.Context())
		require.True(t, ok)
		assert.True(t, result.Valid)
		assert.Equal(t, testAddressHex, result.Address)
		assert.Equal(t, uint64(999), result.AgentID)

		w.WriteHeader(http.StatusOK)
	})

	msg, sig := signedHeaders(t)
	req := httptest.NewRequest(http.MethodPost, "/agent", nil)
	req.Header.Set(HeaderMessage, msg)
	req.Header.Set(HeaderSignature, sig)

	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware_MissingHeaders(t *testing.T) {
	// Test Case 2: requests without SIWA headers are rejected with the
	// shaped envelope

	mw := newTestMiddleware(&mockResolver{})

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/agent", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusRejected, resp.Status)
	assert.Equal(t, verifier.CodeVerificationFailed, resp.Code)
}

func TestAuthMiddleware_Optional(t *testing.T) {
	// Test Case 3: optional mode lets unauthenticated requests through
	// without a result in context

	mw := newTestMiddleware(&mockResolver{})
	mw.SetOptional(true)

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		_, ok := ResultFromContext(r.Context())
		assert.False(t, ok)

		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/agent", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthMiddleware_InvalidEncoding(t *testing.T) {
	// Test Case 4: a message header that is not base64 never reaches the
	// verifier

	mw := newTestMiddleware(&mockResolver{})

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	})

	req := httptest.NewRequest(http.MethodPost, "/agent", nil)
	req.Header.Set(HeaderMessage, "%%% not base64 %%%")
	req.Header.Set(HeaderSignature, "0xdeadbeef")

	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid message encoding")
}

func TestAuthMiddleware_WrongDomain(t *testing.T) {
	// Test Case 5: a message signed for another domain is rejected with
	// DOMAIN_MISMATCH

	v := verifier.NewVerifier(&mockResolver{owner: common.HexToAddress(testAddressHex)}, nil)
	mw := NewAuthMiddleware(v, "other.example.com", acceptNonce)
	mw.SetLogger(quietLogger())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	msg, sig := signedHeaders(t)
	req := httptest.NewRequest(http.MethodPost, "/agent", nil)
	req.Header.Set(HeaderMessage, msg)
	req.Header.Set(HeaderSignature, sig)

	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusRejected, resp.Status)
	assert.Equal(t, verifier.CodeDomainMismatch, resp.Code)
}

func TestAuthMiddleware_NotRegistered(t *testing.T) {
	// Test Case 6: an unregistered agent gets 403 with the register action

	mw := newTestMiddleware(&mockResolver{ownerErr: errors.New("execution reverted")})

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})

	msg, sig := signedHeaders(t)
	req := httptest.NewRequest(http.MethodPost, "/agent", nil)
	req.Header.Set(HeaderMessage, msg)
	req.Header.Set(HeaderSignature, sig)

	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusNotRegistered, resp.Status)
	require.NotNil(t, resp.Action)
	assert.Equal(t, "register", resp.Action.Type)
	assert.NotEmpty(t, resp.Action.Steps)
}

func TestAuthMiddleware_OptionsRequest(t *testing.T) {
	// Test Case 7: CORS preflight passes through unverified

	mw := newTestMiddleware(&mockResolver{})

	handlerCalled := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/agent", nil)
	rr := httptest.NewRecorder()
	mw.Wrap(handler).ServeHTTP(rr, req)

	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResultFromContext_Missing(t *testing.T) {
	// Test Case 8: a bare context carries no result

	_, ok := ResultFromContext(context.Background())
	assert.False(t, ok)
}
