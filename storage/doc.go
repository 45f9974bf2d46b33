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


// Package storage defines the repository interfaces over the three backing
// stores of the search pipeline:
//
//   - the registry store (agencies, regions, user accounts and their usage
//     counters),
//   - the content store (protocol chunks and organization descriptors,
//     keyed independently of the registry),
//   - the cache store (opaque string keys with TTL expiry).
//
// Implementations must be thread-safe. The registry and content stores may
// be unavailable; implementations signal that with ErrUnavailable so
// callers can distinguish "no rows" from "couldn't read".
package storage
