//go:build integration

package handlers_test

import (
	"os"
	"testing"

	"callcenter-gamification-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m, "handlers"))
}
