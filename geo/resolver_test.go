package geo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const tamarindoGeocode = `{
  "status": "OK",
  "results": [{
    "formatted_address": "Calle Central, Tamarindo, Santa Cruz, Guanacaste, Costa Rica",
    "address_components": [
      {"long_name": "Calle Central", "short_name": "Calle Central", "types": ["route"]},
      {"long_name": "Tamarindo", "short_name": "Tamarindo", "types": ["locality", "political"]},
      {"long_name": "Santa Cruz", "short_name": "Santa Cruz", "types": ["administrative_area_level_2", "political"]},
      {"long_name": "Guanacaste", "short_name": "Guanacaste", "types": ["administrative_area_level_1", "political"]},
      {"long_name": "Costa Rica", "short_name": "CR", "types": ["country", "political"]}
    ]
  }]
}`

type ResolverTestSuite struct {
	suite.Suite
	server    *httptest.Server
	requests  int32
	mapClient *maps.Client
}

func (s *ResolverTestSuite) SetupSuite() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.requests, 1)
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("latlng") == "0.000000,0.000000" || r.URL.Query().Get("latlng") == "0,0" {
			fmt.Fprint(w, `{"status": "ZERO_RESULTS", "results": []}`)
			return
		}
		fmt.Fprint(w, tamarindoGeocode)
	}))

	mapClient, err := maps.NewClient(maps.WithAPIKey("test-key"), maps.WithBaseURL(s.server.URL))
	if err != nil {
		s.T().Fatalf("init goolge map client with error: %s", err.Error())
	}
	s.mapClient = mapClient
}

func (s *ResolverTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *ResolverTestSuite) SetupTest() {
	atomic.StoreInt32(&s.requests, 0)
}

func (s *ResolverTestSuite) TestGeocodingLocationResolver() {
	r := NewGeocodingLocationResolver(s.mapClient, "es")

	addr, err := r.ResolveAddress(context.Background(), schema.Coordinate{Latitude: 10.2993, Longitude: -85.8371})
	s.NoError(err)
	s.Equal(Address{
		Formatted: "Calle Central, Tamarindo, Santa Cruz, Guanacaste, Costa Rica",
		District:  "Tamarindo",
		Canton:    "Santa Cruz",
		Province:  "Guanacaste",
		Country:   "Costa Rica",
	}, addr)
}

func (s *ResolverTestSuite) TestGeocodingLocationResolverNoResult() {
	r := NewGeocodingLocationResolver(s.mapClient, "es")

	_, err := r.ResolveAddress(context.Background(), schema.Coordinate{})
	s.Error(err)
}

func (s *ResolverTestSuite) TestCachedLocationResolver() {
	r := NewCachedLocationResolver(NewGeocodingLocationResolver(s.mapClient, "es"), time.Minute)
	c := schema.Coordinate{Latitude: 10.2993, Longitude: -85.8371}

	first, err := r.ResolveAddress(context.Background(), c)
	s.NoError(err)
	second, err := r.ResolveAddress(context.Background(), c)
	s.NoError(err)

	s.Equal(first, second)
	s.Equal(int32(1), atomic.LoadInt32(&s.requests))
}

func (s *ResolverTestSuite) TestDefaultResolver() {
	SetLocationResolver(nil)
	_, err := ResolveAddress(context.Background(), schema.Coordinate{Latitude: 10.3, Longitude: -85.8})
	s.Equal(ErrResolverNotInitialized, err)

	SetLocationResolver(NewGeocodingLocationResolver(s.mapClient, "es"))
	defer SetLocationResolver(nil)

	addr, err := ResolveAddress(context.Background(), schema.Coordinate{Latitude: 10.3, Longitude: -85.8})
	s.NoError(err)
	s.Equal("Tamarindo", addr.District)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}
