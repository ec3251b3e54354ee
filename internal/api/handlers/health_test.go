//go:build integration

package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"callcenter-gamification-backend/internal/api/handlers"
	"callcenter-gamification-backend/internal/cache"
	"callcenter-gamification-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// downCache fails every ping, as an unreachable Redis would
type downCache struct{ cache.Cache }

func (downCache) Ping(context.Context) error { return errors.New("connection refused") }

type HealthHandlerTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
}

func (suite *HealthHandlerTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

func (suite *HealthHandlerTestSuite) router(c cache.Cache) *testutils.HTTPTestSuite {
	h := handlers.NewHealthHandler(suite.baseTestSuite.DB, c)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", h.Health)
	httpSuite.Router.GET("/health/ready", h.Ready)
	httpSuite.Router.GET("/health/live", h.Live)
	return httpSuite
}

func (suite *HealthHandlerTestSuite) TestAllHealthy() {
	httpSuite := suite.router(cache.NewNoop())

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)
	var resp handlers.HealthResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &resp)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Equal(suite.T(), "healthy", resp.Status)
	assert.Equal(suite.T(), "healthy", resp.Services["database"])
	assert.Equal(suite.T(), "healthy", resp.Services["cache"])

	recorder = httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *HealthHandlerTestSuite) TestCacheDownDoesNotBlockReadiness() {
	httpSuite := suite.router(downCache{})

	recorder := httpSuite.MakeRequest(http.MethodGet, "/health", nil)
	var resp handlers.HealthResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &resp)
	assert.Equal(suite.T(), http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(suite.T(), resp.Services["cache"], "connection refused")

	recorder = httpSuite.MakeRequest(http.MethodGet, "/health/ready", nil)
	var ready struct {
		Ready    bool              `json:"ready"`
		Services map[string]string `json:"services"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &ready)
	require.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.True(suite.T(), ready.Ready)
	assert.Equal(suite.T(), "ready", ready.Services["database"])
}

func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
