// Package sequence issues the human-readable vendor identifiers
// (VENDOR001, VENDOR002, ...) backed by a named monotonic counter.
package sequence

import (
	"context"
	"fmt"
)

// VendorCounter is the counter name driving vendor identifier assignment.
const VendorCounter = "vendor_counter"

// Repository persists named monotonic counters.
type Repository interface {
	// Next atomically increments the named counter and returns the new value.
	// The read-modify-write must be a single atomic step: concurrent callers
	// never observe the same value.
	Next(ctx context.Context, name string) (int64, error)

	// Current returns the last assigned value without mutating the counter,
	// 0 when the counter does not exist yet.
	Current(ctx context.Context, name string) (int64, error)
}

// Sequencer formats counter values as vendor identifiers. Each Sequencer owns
// a Repository handle, so tests can run independent counters without shared
// process state.
type Sequencer struct {
	repo Repository
}

func NewSequencer(repo Repository) *Sequencer {
	return &Sequencer{repo: repo}
}

// NextIdentifier consumes the next sequence number and returns it formatted.
func (s *Sequencer) NextIdentifier(ctx context.Context) (string, error) {
	n, err := s.repo.Next(ctx, VendorCounter)
	if err != nil {
		return "", fmt.Errorf("next vendor identifier: %w", err)
	}
	return FormatIdentifier(n), nil
}

// PeekNextIdentifier returns what the next NextIdentifier call would produce
// without consuming a number. Concurrent creates can invalidate the result;
// it is a UI hint, not a reservation.
func (s *Sequencer) PeekNextIdentifier(ctx context.Context) (string, error) {
	n, err := s.repo.Current(ctx, VendorCounter)
	if err != nil {
		return "", fmt.Errorf("peek vendor identifier: %w", err)
	}
	return FormatIdentifier(n + 1), nil
}

// FormatIdentifier renders a sequence number with a minimum of three digits:
// VENDOR001, VENDOR042, VENDOR1000. Padding is a minimum, not a maximum.
func FormatIdentifier(n int64) string {
	return fmt.Sprintf("VENDOR%03d", n)
}
