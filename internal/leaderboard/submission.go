package leaderboard

import (
	"context"
	"sync"
	"time"
)

type Status int

const (
	Unsent Status = iota
	Pending
	Sent
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "sending"
	case Sent:
		return "sent"
	case Failed:
		return "failed"
	default:
		return "unsent"
	}
}

type result struct {
	rank int
	err  error
}

// Submission sends one end-of-session score in the background. The game loop
// calls Poll every frame; it never blocks. A failed submission can be started
// again.
type Submission struct {
	submitter Submitter
	timeout   time.Duration

	mu     sync.Mutex
	status Status
	rank   int
	err    error
	done   chan result
}

func NewSubmission(submitter Submitter, timeout time.Duration) *Submission {
	return &Submission{submitter: submitter, timeout: timeout}
}

// Start sends the score unless a send is in flight or already succeeded.
func (s *Submission) Start(name string, score int) error {
	name = SanitizeName(name)
	if name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Pending || s.status == Sent {
		return nil
	}
	s.status = Pending
	s.err = nil
	done := make(chan result, 1)
	s.done = done

	go func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		rank, err := s.submitter.Submit(ctx, name, score)
		done <- result{rank: rank, err: err}
	}()
	return nil
}

// Poll returns the current state, collecting the result if the send finished.
func (s *Submission) Poll() (Status, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == Pending {
		select {
		case r := <-s.done:
			if r.err != nil {
				s.status, s.err = Failed, r.err
			} else {
				s.status, s.rank = Sent, r.rank
			}
		default:
		}
	}
	return s.status, s.rank, s.err
}

// Fetcher reads the board.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Entry, error)
}

// FetchResult is delivered once by FetchAsync.
type FetchResult struct {
	Entries []Entry
	Err     error
}

// FetchAsync reads the board in the background. The channel is buffered so
// the goroutine finishes even if nobody reads the result.
func FetchAsync(f Fetcher, timeout time.Duration) <-chan FetchResult {
	out := make(chan FetchResult, 1)
	go func() {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		entries, err := f.Fetch(ctx)
		out <- FetchResult{Entries: entries, Err: err}
	}()
	return out
}
