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

// Package main demonstrates the agent side of a SIWA sign-in.
//
// It builds a sign-in message, signs it with a local private key and prints
// the headers a client would attach to the authenticated request.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"log"

	"github.com/siwa-project/siwa-go/pkg/message"
	"github.com/siwa-project/siwa-go/pkg/signer"
)

func main() {
	var (
		keyHex   = flag.String("key", "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d", "agent wallet private key (hex)")
		domain   = flag.String("domain", "test.example.com", "domain requesting the sign-in")
		uri      = flag.String("uri", "https://test.example.com/login", "sign-in target URI")
		agentID  = flag.Uint64("agent-id", 999, "ERC-8004 agent token id")
		registry = flag.String("registry", "eip155:84532:0x8004AA63c570c570eBF15376c0dB199918BD9e73", "agent registry identifier")
		chainID  = flag.Uint64("chain-id", 84532, "chain id")
	)
	flag.Parse()

	ctx := context.Background()

	s, err := signer.NewLocalSignerFromHex(*keyHex)
	if err != nil {
		log.Fatalf("Failed to load key: %v", err)
	}

	address, err := s.GetAddress(ctx)
	if err != nil {
		log.Fatalf("Failed to derive address: %v", err)
	}

	nonce, err := message.GenerateNonce(message.DefaultNonceLength)
	if err != nil {
		log.Fatalf("Failed to generate nonce: %v", err)
	}

	fields := &message.Message{
		Domain:        *domain,
		Address:       address.Hex(),
		Statement:     "I am signing in to prove control of this agent.",
		URI:           *uri,
		Version:       message.DefaultVersion,
		AgentID:       *agentID,
		AgentRegistry: *registry,
		ChainID:       *chainID,
		Nonce:         nonce,
		IssuedAt:      message.Now(),
		RequestID:     message.NewRequestID(),
	}

	signed, err := signer.SignMessage(ctx, fields, s)
	if err != nil {
		log.Fatalf("Failed to sign message: %v", err)
	}

	fmt.Println("=== SIWA Sign-In ===")
	fmt.Println()
	fmt.Println("Message:")
	fmt.Println(signed.Message)
	fmt.Println()
	fmt.Printf("Address:   %s\n", signed.Address)
	fmt.Printf("Signature: %s\n", signed.Signature)
	fmt.Println()
	fmt.Println("Request headers:")
	fmt.Printf("  X-SIWA-Message:   %s\n", base64.StdEncoding.EncodeToString([]byte(signed.Message)))
	fmt.Printf("  X-SIWA-Signature: %s\n", signed.Signature)
}
