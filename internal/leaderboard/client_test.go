package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"jungle-defense/internal/config"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(config.LeaderboardConfig{BaseURL: srv.URL + "/", Timeout: time.Second}, zaptest.NewLogger(t))
	c.backoff = time.Millisecond
	return c
}

func TestSubmit(t *testing.T) {
	var got createRequest
	var requestID string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/create.php" {
			t.Errorf("request %s %s", r.Method, r.URL.Path)
		}
		requestID = r.Header.Get(RequestIDHeader)
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"status":201,"message":"Scores Created Successfully","data":{"rank":"4"}}`))
	}))

	rank, err := c.Submit(context.Background(), "  Bartholomew the Great ", 1230)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if rank != 4 {
		t.Errorf("rank = %d, want 4", rank)
	}
	if got.Name != "Bartholomew" || got.Score != 1230 {
		t.Errorf("server got %+v, want the name trimmed and capped at 11", got)
	}
	if requestID == "" {
		t.Error("request id header missing")
	}
}

func TestSubmitRejections(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":422,"message":"Enter you name"}`))
	}))
	if _, err := c.Submit(context.Background(), "   ", 10); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank name error = %v, want ErrEmptyName", err)
	}
	if _, err := c.Submit(context.Background(), "ann", 10); !errors.Is(err, ErrRejected) {
		t.Errorf("422 error = %v, want ErrRejected", err)
	}
}

func TestSubmitRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"status":201,"data":{"rank":1}}`))
	}))
	rank, err := c.Submit(context.Background(), "ann", 99)
	if err != nil || rank != 1 {
		t.Fatalf("Submit() = %d, %v", rank, err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []Entry
		wantErr bool
	}{
		{
			name: "string columns",
			body: `{"status":200,"data":[{"name":"ann","score":"300","rank":"1"},{"name":"bob","score":"120","rank":"2"}]}`,
			want: []Entry{{"ann", 300, 1}, {"bob", 120, 2}},
		},
		{
			name: "empty board",
			body: `{"status":404,"message":"No Score Found"}`,
		},
		{
			name:    "server error",
			body:    `{"status":405,"message":"GET Method Not Allowed"}`,
			wantErr: true,
		},
		{
			name:    "garbage",
			body:    `<html>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/read.php" {
					t.Errorf("path = %s", r.URL.Path)
				}
				w.Write([]byte(tt.body))
			}))
			got, err := c.Fetch(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Fetch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Fetch() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
