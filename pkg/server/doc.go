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

// Package server provides HTTP middleware for SIWA authentication.
//
// AuthMiddleware verifies the signed message carried in the X-SIWA-Message
// and X-SIWA-Signature request headers and stores the verification result in
// the request context:
//
//	mw := server.NewAuthMiddleware(v, "api.example.com", nonceStore.Validate)
//	http.Handle("/agent", mw.Wrap(agentHandler))
//
// Handlers downstream read the caller's identity with ResultFromContext.
// Rejected requests never reach the wrapped handler; they are answered with
// the shaped response envelope, HTTP 403 for unregistered agents and 401 for
// everything else.
package server
