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


// Package search ranks protocol chunks against a normalized query.
//
// Retrieval is scoped to one content-store org when the caller resolved
// one, else to a region, else to a capped scan of the whole corpus. The
// score is a plain additive formula over phrase matches, per-term body
// occurrences, and a synonym table; documents scoring zero are excluded
// and ties keep store insertion order.
package search
