package configwatcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cyber_academy_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	storage := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	write := func(level string) {
		body := fmt.Sprintf("jwt:\n  secret: watcher-secret\nstorage:\n  local_path: %s\nlog:\n  level: %s\n", storage, level)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	write("info")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, path, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// keep touching the file until the watcher is up and the debounce fires
	ticker := time.NewTicker(1500 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)

	for {
		select {
		case cfg := <-reloaded:
			assert.Equal(t, "warn", cfg.Log.Level)
			cancel()
			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(2 * time.Second):
				t.Fatal("watcher did not stop after cancel")
			}
			return
		case <-ticker.C:
			write("warn")
		case <-timeout:
			t.Fatal("config was not reloaded")
		}
	}
}

func TestWatchConfig_MissingDirectory(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "absent", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
