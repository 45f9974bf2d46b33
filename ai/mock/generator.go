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


package mock

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/resqnet/protosearch/ai"
	"github.com/resqnet/protosearch/core"
)

// MockAnswerGenerator is a test double for ai.AnswerGenerator.
// By default it returns a deterministic answer naming the top result;
// set GenerateFunc to inject custom behavior.
type MockAnswerGenerator struct {
	// GenerateFunc, when non-nil, replaces the default behavior.
	GenerateFunc func(ctx context.Context, query string, results []core.RankedDocument) (string, error)

	calls atomic.Int64
}

var _ ai.AnswerGenerator = (*MockAnswerGenerator)(nil)

// NewMockAnswerGenerator creates a new mock answer generator.
func NewMockAnswerGenerator() *MockAnswerGenerator {
	return &MockAnswerGenerator{}
}

// GenerateAnswer returns a deterministic answer or delegates to GenerateFunc.
func (m *MockAnswerGenerator) GenerateAnswer(ctx context.Context, query string, results []core.RankedDocument) (string, error) {
	m.calls.Add(1)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, query, results)
	}
	if len(results) == 0 {
		return "", errors.New("no results to summarize")
	}
	return fmt.Sprintf("Per protocol %s (%s): see excerpt for %q.",
		results[0].DocumentNumber, results[0].Title, query), nil
}

// CallCount returns how many times GenerateAnswer was invoked.
func (m *MockAnswerGenerator) CallCount() int64 {
	return m.calls.Load()
}
