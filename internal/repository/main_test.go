//go:build integration

package repository

import (
	"os"
	"testing"

	"callcenter-gamification-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m, "repository"))
}
