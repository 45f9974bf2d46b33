// Copyright 2026 Resqnet Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidAgency indicates an Agency failed validation.
	ErrInvalidAgency = errors.New("invalid agency")

	// ErrInvalidProtocolChunk indicates a ProtocolChunk failed validation.
	ErrInvalidProtocolChunk = errors.New("invalid protocol chunk")

	// ErrInvalidUser indicates a User failed validation.
	ErrInvalidUser = errors.New("invalid user")

	// ErrEmptyName indicates a required name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyBody indicates the chunk Body field is empty.
	ErrEmptyBody = errors.New("body cannot be empty")

	// ErrEmptyTitle indicates the chunk Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidRegionCode indicates a region code is not two letters.
	ErrInvalidRegionCode = errors.New("region code must be two letters")

	// ErrInvalidTier indicates an invalid Tier value.
	ErrInvalidTier = errors.New("invalid tier")

	// ErrQueryTooLong indicates a raw query exceeds the accepted size.
	ErrQueryTooLong = errors.New("query too long")
)
