//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

// LiveServiceTestSuite exercises the client against the real service.
type LiveServiceTestSuite struct {
	suite.Suite

	config *TestConfig
	client dftrans.Client
}

// SetupSuite initializes the test environment.
func (suite *LiveServiceTestSuite) SetupSuite() {
	suite.config = LoadTestConfig()
	suite.config.SkipIfMissingConfig(suite.T())
	suite.client = suite.config.NewClient(suite.T())
}

func (suite *LiveServiceTestSuite) context() context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	suite.T().Cleanup(cancel)

	return ctx
}

func (suite *LiveServiceTestSuite) TestRouteByNumber() {
	route, err := suite.client.Routes().Get(suite.context(), suite.config.Route)
	suite.Require().NoError(err)
	suite.NotEmpty(route.Description)
}

func (suite *LiveServiceTestSuite) TestUnknownRoute() {
	_, err := suite.client.Routes().Get(suite.context(), "INVALID999")
	suite.Require().Error(err)

	status, ok := dftrans.StatusCode(err)
	suite.True(ok || dftrans.IsDecode(err), "unexpected error: %v", err)

	if ok {
		suite.GreaterOrEqual(status, 400)
	}
}

func (suite *LiveServiceTestSuite) TestStopCoordinates() {
	stop, err := suite.client.Stops().Get(suite.context(), suite.config.StopCode)
	suite.Require().NoError(err)
	suite.InDelta(-15.8, stop.Latitude, 1.5)
	suite.InDelta(-47.9, stop.Longitude, 1.5)
}

func (suite *LiveServiceTestSuite) TestStationsGeo() {
	stations, err := suite.client.Stations().ListGeo(suite.context())
	suite.Require().NoError(err)

	for _, feature := range stations.Features {
		_, err := feature.Geometry.Point()
		suite.NoError(err)
	}
}

func (suite *LiveServiceTestSuite) TestRecentVehicles() {
	vehicles, err := suite.client.Vehicles().RecentForRoute(suite.context(), suite.config.Route)
	suite.Require().NoError(err)
	suite.GreaterOrEqual(vehicles.Len(), 0)
}

func (suite *LiveServiceTestSuite) TestCLIRouteGet() {
	suite.config.SkipIfMissingBinary(suite.T())

	stdout, stderr, err := NewCommandRunner(suite.config, suite.T()).Run("routes", "get", suite.config.Route, "--output", "json")
	suite.Require().NoError(err, "stderr: %s", stderr)

	var route dftrans.Route
	suite.Require().NoError(json.Unmarshal([]byte(stdout), &route))
	suite.Equal(suite.config.Route, route.Number)
}

func TestLiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LiveServiceTestSuite))
}
