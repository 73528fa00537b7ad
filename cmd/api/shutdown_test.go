package main

import (
	"bytes"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/joho/godotenv"
)

// syncBuffer lets stdout and stderr be written concurrently without dropping output.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func moduleRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("go.mod not found")
		}
		dir = parent
	}
}

func buildApiBinary(t *testing.T, root string) string {
	t.Helper()
	exe := filepath.Join(t.TempDir(), "trendforge-api")
	build := exec.Command("go", "build", "-o", exe, "./cmd/api")
	build.Dir = root
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("go build ./cmd/api: %v\n%s", err, out)
	}
	return exe
}

func waitForPort(addr string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
		if err == nil {
			conn.Close()
			return true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}

var requiredShutdownLogs = []string{
	"Shutting down servers...",
	"All servers shutdown complete",
}

func TestShutdownGraceful(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the api binary")
	}

	root := moduleRoot(t)
	_ = godotenv.Load(filepath.Join(root, ".env"))

	redisAddr := os.Getenv("CACHE_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	if !waitForPort(redisAddr, time.Second) {
		t.Skipf("Skipping shutdown integration test: redis not reachable at %s", redisAddr)
	}

	port := "18089"
	exe := buildApiBinary(t, root)
	cmd := exec.Command(exe, "--service=all")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "API_PORT="+port, "DB_DRIVER=memory", "SHUTDOWN_TIMEOUT=10s")
	output := &syncBuffer{}
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	defer func() { _ = cmd.Process.Kill() }()

	addr := net.JoinHostPort("localhost", port)
	if !waitForPort(addr, 10*time.Second) {
		t.Fatalf("API never listened on %s. Output:\n%s", addr, output.String())
	}

	// an incomplete request keeps a connection in flight until ReadTimeout
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		t.Fatalf("dial api: %v", err)
	}
	defer conn.Close()
	_, _ = conn.Write([]byte("GET /api/v1/ping HTTP/1.1\r\nHost: localhost\r\n"))
	time.Sleep(300 * time.Millisecond)

	if err := cmd.Process.Signal(os.Interrupt); err != nil {
		t.Fatalf("Failed to send SIGINT: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case waitErr := <-done:
		outStr := output.String()
		if waitErr != nil {
			t.Errorf("Process did not exit gracefully: %v. Output:\n%s", waitErr, outStr)
		}
		for _, want := range requiredShutdownLogs {
			if !strings.Contains(outStr, want) {
				t.Errorf("Shutdown log missing: %q. Full output:\n%s", want, outStr)
			}
		}
	case <-time.After(20 * time.Second):
		t.Fatalf("Shutdown did not complete within 20s. Output so far:\n%s", output.String())
	}
}
