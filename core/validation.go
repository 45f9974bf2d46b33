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

import (
	"fmt"
)

// MaxQueryBytes is the largest raw query accepted by the pipeline.
// Longer input is rejected before any store access.
const MaxQueryBytes = 512

// ValidateAgency validates an Agency according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - RegionCode must be two letters
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - RegionName (optional display text)
func ValidateAgency(agency *Agency) error {
	if agency == nil {
		return fmt.Errorf("%w: agency is nil", ErrInvalidAgency)
	}

	if agency.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAgency, ErrEmptyName)
	}

	if !IsValidRegionCode(agency.RegionCode) {
		return fmt.Errorf("%w: %w", ErrInvalidAgency, ErrInvalidRegionCode)
	}

	return nil
}

// ValidateProtocolChunk validates a ProtocolChunk according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Body must not be empty
//   - RegionCode, when set, must be two letters
//
// NOT validated:
//   - Vector (optional, produced by an external pipeline)
//   - Section and DocumentNumber (optional)
//   - ID (0 is valid from database sequences)
func ValidateProtocolChunk(chunk *ProtocolChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidProtocolChunk)
	}

	if chunk.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProtocolChunk, ErrEmptyTitle)
	}

	if chunk.Body == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProtocolChunk, ErrEmptyBody)
	}

	if chunk.RegionCode != "" && !IsValidRegionCode(chunk.RegionCode) {
		return fmt.Errorf("%w: %w", ErrInvalidProtocolChunk, ErrInvalidRegionCode)
	}

	return nil
}

// ValidateUser validates a User according to domain rules.
//
// Validation rules:
//   - OpenId must not be empty
//   - Tier must be a known value
//   - QueryCountToday must not be negative
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrInvalidUser)
	}

	if user.OpenId == "" {
		return fmt.Errorf("%w: open id cannot be empty", ErrInvalidUser)
	}

	if err := ValidateTier(user.Tier); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUser, err)
	}

	if user.QueryCountToday < 0 {
		return fmt.Errorf("%w: query count cannot be negative", ErrInvalidUser)
	}

	return nil
}

// ValidateTier validates that a Tier has a valid value.
func ValidateTier(tier Tier) error {
	if tier != TierFree && tier != TierPro && tier != TierEnterprise {
		return fmt.Errorf("%w: value %d", ErrInvalidTier, tier)
	}
	return nil
}

// ValidateRawQuery rejects oversized raw queries. Empty input is valid;
// the pipeline answers it with an empty result set rather than an error.
func ValidateRawQuery(raw string) error {
	if len(raw) > MaxQueryBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(raw), MaxQueryBytes)
	}
	return nil
}

// IsValidRegionCode checks that a region code is exactly two ASCII letters.
func IsValidRegionCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		c := code[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
