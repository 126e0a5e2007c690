package testutil

import (
	"fmt"
	"net"
	"sync"
	"testing"
)

const maxPortAttempts = 20

var (
	portMutex = &sync.Mutex{}
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that no other caller in this test binary has been given.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for range maxPortAttempts {
		listener, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		p := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}

		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
	t.Fatalf("No unused port after %d attempts", maxPortAttempts)
	return 0
}

// GetRandomListeningPort returns a "localhost:port" address that was bindable a moment ago,
// suitable for a listen setting.
func GetRandomListeningPort(t *testing.T) string {
	t.Helper()
	for range maxPortAttempts {
		addr := fmt.Sprintf("localhost:%d", GetRandomPort(t))
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			continue
		}
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}
		return addr
	}
	t.Fatalf("No listening address after %d attempts", maxPortAttempts)
	return ""
}

// HTTPURL joins a listen address such as "localhost:8080" and a path into a URL.
func HTTPURL(addr, path string) string {
	return fmt.Sprintf("http://%s%s", addr, path)
}
