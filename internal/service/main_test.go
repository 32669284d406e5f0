package service_test

import (
	"os"
	"testing"

	"guard-deployment-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedRedis()
	os.Exit(code)
}
