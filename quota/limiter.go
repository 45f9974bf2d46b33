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


// Package quota enforces per-user daily query ceilings.
//
// The counter update is delegated to the registry store as one
// conditional read-modify-write, so no in-process lock is involved and
// multiple process instances stay correct. The counter tracks attempts,
// not admissions: a denied call still increments, which keeps hammering
// past the limit visible in the stored count.
package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/resqnet/protosearch/core"
	"github.com/resqnet/protosearch/storage"
)

// dateLayout is the calendar-date form stored on the user row.
const dateLayout = "2006-01-02"

// Decision is the outcome of one quota check.
type Decision struct {
	Allowed  bool
	NewCount int64
}

// Limiter applies the daily query quota.
type Limiter struct {
	userRepository storage.UserRepository
	logger         *slog.Logger
	now            func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// WithClock overrides the time source, mainly for rollover tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) error {
		if now != nil {
			l.now = now
		}
		return nil
	}
}

// NewLimiter creates a new limiter.
func NewLimiter(userRepository storage.UserRepository, opts ...Option) (*Limiter, error) {
	if userRepository == nil {
		return nil, ErrUserRepositoryRequired
	}

	l := &Limiter{
		userRepository: userRepository,
		logger:         slog.Default(),
		now:            time.Now,
	}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// IncrementAndCheck counts one query attempt and reports whether it is
// within the daily limit. The increment happens unconditionally, even
// when the outcome is a denial, and the stored counter resets lazily on
// the first attempt of a new calendar day. Unlimited tiers are always
// allowed but still counted.
func (l *Limiter) IncrementAndCheck(ctx context.Context, userId core.ID, limit core.DailyLimit) (Decision, error) {
	today := l.now().UTC().Format(dateLayout)

	newCount, err := l.userRepository.IncrementQueryCount(ctx, userId, today)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{
		Allowed:  limit.Allows(newCount),
		NewCount: newCount,
	}

	if !decision.Allowed {
		ceiling, _ := limit.Value()
		l.logger.Info("daily quota exceeded",
			"user", userId,
			"count", newCount,
			"limit", ceiling)
	}

	return decision, nil
}
