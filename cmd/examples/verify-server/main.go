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

// Package main runs a relying-party server that authenticates agents with
// SIWA.
//
// It exposes two endpoints:
//   - GET /nonce issues a single-use nonce for the sign-in message
//   - POST /agent requires a verified sign-in and echoes the caller identity
//
// Configuration comes from the environment:
//
//	SIWA_DOMAIN=api.example.com SIWA_RPC_URL=https://sepolia.base.org ./verify-server
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/siwa-project/siwa-go/pkg/message"
	"github.com/siwa-project/siwa-go/pkg/server"
	"github.com/siwa-project/siwa-go/pkg/verifier"
)

type config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	Domain          string        `envconfig:"DOMAIN" required:"true"`
	RPCURL          string        `envconfig:"RPC_URL" required:"true"`
	RegistryAddress string        `envconfig:"REGISTRY_ADDRESS"`
	NonceTTL        time.Duration `envconfig:"NONCE_TTL" default:"5m"`
}

// nonceStore keeps issued nonces in memory and consumes them on first use.
// Good enough for a single instance; a shared deployment would back this with
// a database or cache.
type nonceStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	issued map[string]time.Time
}

func newNonceStore(ttl time.Duration) *nonceStore {
	return &nonceStore{ttl: ttl, issued: make(map[string]time.Time)}
}

func (s *nonceStore) Issue() (string, error) {
	nonce, err := message.GenerateNonce(message.DefaultNonceLength)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.issued[nonce] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return nonce, nil
}

// Validate consumes the nonce; a second sign-in with the same nonce fails.
func (s *nonceStore) Validate(ctx context.Context, nonce string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline, ok := s.issued[nonce]
	if !ok {
		return false, nil
	}
	delete(s.issued, nonce)
	return time.Now().Before(deadline), nil
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	var cfg config
	if err := envconfig.Process("siwa", &cfg); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	resolver, err := verifier.DialEthResolver(ctx, cfg.RPCURL)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to RPC endpoint")
	}

	v := verifier.NewVerifier(resolver, &verifier.Options{
		RegistryAddress: cfg.RegistryAddress,
	})

	nonces := newNonceStore(cfg.NonceTTL)
	mw := server.NewAuthMiddleware(v, cfg.Domain, nonces.Validate)
	mw.SetLogger(logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/nonce", func(w http.ResponseWriter, r *http.Request) {
		nonce, err := nonces.Issue()
		if err != nil {
			http.Error(w, "failed to issue nonce", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"nonce": nonce})
	})
	mux.Handle("/agent", mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, _ := server.ResultFromContext(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":     "hello, agent",
			"address":     result.Address,
			"agent_id":    result.AgentID,
			"signer_type": result.SignerType,
		})
	})))

	logger.WithFields(logrus.Fields{
		"addr":   cfg.Addr,
		"domain": cfg.Domain,
	}).Info("verify server listening")

	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
