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

package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// KeyringProxySigner implements Signer against a remote keyring proxy.
//
// The proxy keeps the private key; this client only asks it for the account
// address and for signatures over exact message bytes:
//
//	GET  <baseURL>/address      -> {"address": "0x..."}
//	POST <baseURL>/sign         <- {"message": "..."}
//	                            -> {"signature": "0x..."}
type KeyringProxySigner struct {
	baseURL    string
	httpClient *http.Client
}

// NewKeyringProxySigner creates a signer backed by the keyring proxy at
// baseURL. Pass nil to use http.DefaultClient.
func NewKeyringProxySigner(baseURL string, httpClient *http.Client) *KeyringProxySigner {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &KeyringProxySigner{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetAddress fetches the proxy's account address
func (s *KeyringProxySigner) GetAddress(ctx context.Context) (common.Address, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/address", nil)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to create request: %w", err)
	}

	var body struct {
		Address string `json:"address"`
	}
	if err := s.do(req, &body); err != nil {
		return common.Address{}, fmt.Errorf("failed to resolve address from keyring proxy: %w", err)
	}
	if !common.IsHexAddress(body.Address) {
		return common.Address{}, fmt.Errorf("keyring proxy returned invalid address %q", body.Address)
	}

	return common.HexToAddress(body.Address), nil
}

// SignMessage asks the proxy to sign message and returns the hex signature
func (s *KeyringProxySigner) SignMessage(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal sign request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/sign", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body struct {
		Signature string `json:"signature"`
	}
	if err := s.do(req, &body); err != nil {
		return "", fmt.Errorf("failed to sign via keyring proxy: %w", err)
	}
	if body.Signature == "" {
		return "", fmt.Errorf("keyring proxy returned empty signature")
	}

	return body.Signature, nil
}

func (s *KeyringProxySigner) do(req *http.Request, out interface{}) error {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("keyring proxy returned status %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
