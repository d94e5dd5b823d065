package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// what was written. The summary contract is plain stdout writes, not
// cobra output, so SetOut is not enough here.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured stdout: %v", err)
	}
	return string(data), runErr
}

func TestSummaryOutput(t *testing.T) {
	body := `{"blocks":[{"block_number":18000000,"miner_reward":"1500000000000000",` +
		`"transactions":[{"coinbase_transfer":100},{"coinbase_transfer":200}]}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--endpoint", srv.URL, "18000000"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	out, err := captureStdout(t, cmd.Execute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Fetching: " + srv.URL + "/v1/blocks?block_number=18000000\n" +
		"block_number=18000000, miner_reward=1500000000000000, miner_coinbase_transfers=300\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestNonIntegerArgument(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--endpoint", srv.URL, "abc"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	out, err := captureStdout(t, cmd.Execute)
	if err == nil {
		t.Fatal("expected error for non-integer argument")
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
	if strings.Contains(out, "Fetching:") {
		t.Errorf("Fetching line printed despite argument error: %q", out)
	}
}

func TestFetchingLinePrecedesTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--endpoint", srv.URL, "5"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	out, err := captureStdout(t, cmd.Execute)
	if err == nil {
		t.Fatal("expected transport error")
	}

	// The diagnostic line precedes the request, so it must be there even
	// when the request never completes.
	want := "Fetching: " + srv.URL + "/v1/blocks?block_number=5\n"
	if out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestEndpointOverrideValidated(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--endpoint", "blocks.flashbots.net", "5"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	out, err := captureStdout(t, cmd.Execute)
	if err == nil {
		t.Fatal("expected error for endpoint without scheme")
	}
	if out != "" {
		t.Errorf("no stdout expected before validation failure, got %q", out)
	}
}
