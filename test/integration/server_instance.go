package integration

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mirrorops/cloudiam/pkg/server"
	"github.com/mirrorops/cloudiam/pkg/server/endpoints"
)

// startInlineServer runs the read API in-process against the given
// directory. The caller shuts it down with Shutdown.
func startInlineServer(directory server.Directory, jwtSecret []byte, port string) (*server.Server, error) {
	s := server.NewServer(directory, "127.0.0.1", port)
	endpoints.RegisterAll(s, jwtSecret)

	go func() {
		_ = s.Start()
	}()

	serverURL := fmt.Sprintf("http://127.0.0.1:%s", port)
	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		_ = s.Shutdown(context.Background())
		return nil, err
	}
	return s, nil
}

// waitForServer polls the status endpoint until it responds or times out
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/status")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}
