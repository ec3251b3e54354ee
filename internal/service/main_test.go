//go:build integration

package service

import (
	"os"
	"testing"

	"callcenter-gamification-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunIntegration(m, "service"))
}
