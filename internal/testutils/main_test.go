package testutils

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	code := m.Run()
	CleanupSharedContainer()
	CleanupSharedRedis()
	os.Exit(code)
}
