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

// Package response shapes verification results into the envelope platforms
// forward to agents.
//
// Downstream platforms only branch on Status: "authenticated",
// "not_registered" or "rejected". The not_registered branch carries a
// register Action with concrete remediation steps instead of a bare
// rejection, so an unregistered agent can self-serve.
//
//	resp := response.Build(result, response.DefaultSkillRef)
//	json.NewEncoder(w).Encode(resp)
package response
