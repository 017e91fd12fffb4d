// Package leaderboard talks to the public score board over HTTP.
//
// The board speaks JSON with a "status" field in every body; the HTTP status
// line of the server is not reliable, so the body decides success.
package leaderboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"jungle-defense/internal/config"
)

var (
	ErrEmptyName = errors.New("player name is empty")
	// ErrRejected is returned when the board answers with a non-success status.
	ErrRejected = errors.New("leaderboard rejected the request")
)

// RequestIDHeader carries a per-request uuid so duplicate retries can be traced.
const RequestIDHeader = "X-Request-ID"

// Entry is one line of the board.
type Entry struct {
	Name  string
	Score int
	Rank  int
}

// Submitter stores a score and returns the rank it got.
type Submitter interface {
	Submit(ctx context.Context, name string, score int) (int, error)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	retries uint64
	backoff time.Duration
}

func NewClient(cfg config.LeaderboardConfig, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log.Named("leaderboard"),
		retries: 2,
		backoff: 200 * time.Millisecond,
	}
}

// SanitizeName trims whitespace and caps the name at the board's length limit.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > config.MaxPlayerNameLength {
		name = string(r[:config.MaxPlayerNameLength])
	}
	return name
}

// flexInt accepts both JSON numbers and numeric strings; the board returns
// database columns as strings.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", b)
	}
	*f = flexInt(n)
	return nil
}

type envelope struct {
	Status  flexInt         `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type createRequest struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type createData struct {
	Rank flexInt `json:"rank"`
}

type entryData struct {
	Name  string  `json:"name"`
	Score flexInt `json:"score"`
	Rank  flexInt `json:"rank"`
}

// Submit posts a score and returns the rank the board assigned.
func (c *Client) Submit(ctx context.Context, name string, score int) (int, error) {
	name = SanitizeName(name)
	if name == "" {
		return 0, ErrEmptyName
	}
	body, err := json.Marshal(createRequest{Name: name, Score: score})
	if err != nil {
		return 0, fmt.Errorf("encode score: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, "/create.php", body)
	if err != nil {
		return 0, err
	}
	if env.Status != http.StatusCreated {
		return 0, fmt.Errorf("%w: %d %s", ErrRejected, env.Status, env.Message)
	}
	var data createData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return 0, fmt.Errorf("decode rank: %w", err)
	}
	c.log.Info("score submitted", zap.String("name", name), zap.Int("score", score), zap.Int("rank", int(data.Rank)))
	return int(data.Rank), nil
}

// Fetch returns the board ordered by rank. An empty board is not an error.
func (c *Client) Fetch(ctx context.Context) ([]Entry, error) {
	env, err := c.do(ctx, http.MethodGet, "/read.php", nil)
	if err != nil {
		return nil, err
	}
	switch env.Status {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %d %s", ErrRejected, env.Status, env.Message)
	}
	var rows []entryData
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, Entry{Name: r.Name, Score: int(r.Score), Rank: int(r.Rank)})
	}
	return out, nil
}

// do sends one request, retrying transport errors and 5xx answers with backoff.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	requestID := uuid.NewString()
	var env *envelope

	b := retry.WithMaxRetries(c.retries, retry.NewExponential(c.backoff))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDHeader, requestID)

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Warn("request failed", zap.String("path", path), zap.String("request_id", requestID), zap.Error(err))
			return retry.RetryableError(fmt.Errorf("%s %s: %w", method, path, err))
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return retry.RetryableError(fmt.Errorf("read %s: %w", path, err))
		}
		var e envelope
		if err := json.Unmarshal(raw, &e); err != nil {
			if resp.StatusCode >= 500 {
				return retry.RetryableError(fmt.Errorf("%s %s: http %d", method, path, resp.StatusCode))
			}
			return fmt.Errorf("decode %s: %w", path, err)
		}
		if e.Status >= 500 {
			return retry.RetryableError(fmt.Errorf("%w: %d %s", ErrRejected, e.Status, e.Message))
		}
		env = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return env, nil
}
