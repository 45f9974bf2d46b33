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


package resolve

import "errors"

var (
	// ErrAgencyRepositoryRequired is returned when an agency repository is not provided.
	ErrAgencyRepositoryRequired = errors.New("agency repository required")

	// ErrProtocolRepositoryRequired is returned when a protocol repository is not provided.
	ErrProtocolRepositoryRequired = errors.New("protocol repository required")
)
