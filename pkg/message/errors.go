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
	"errors"
	"fmt"
)

// Static errors
var (
	ErrMessageTooShort = errors.New("siwa: message needs at least a domain line and an address line")
	ErrInvalidHeader   = errors.New("siwa: message first line does not end in \" wants you to sign in with your Agent account:\"")
	ErrInvalidAddress  = errors.New("siwa: address line must be a 0x-prefixed 42 character string")
)

// Dynamic error constructors
func errInvalidNumericField(key, value string) error {
	return fmt.Errorf("siwa: %s value %q is not a base-10 integer", key, value)
}
