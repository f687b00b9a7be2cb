//go:build integration
// +build integration

package handlers

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"medcheck-backend/internal/testutils"
)

// TestMain ensures Docker cleanup for the handler tests that hit a real database
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()

	testutils.CleanupSharedContainer()
	os.Exit(code)
}
