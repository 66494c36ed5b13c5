package geo

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const geoLogPrefix = "geo"

var (
	ErrNoGeoInfoFound         = fmt.Errorf("no geo information found")
	ErrResolverNotInitialized = fmt.Errorf("location resolver is not initialized")
)

// Address is the postal description of a map point.
type Address struct {
	Formatted string `json:"formatted"`
	District  string `json:"district,omitempty"`
	Canton    string `json:"canton,omitempty"`
	Province  string `json:"province,omitempty"`
	Country   string `json:"country,omitempty"`
}

// LocationResolver - interface for resolving location
type LocationResolver interface {
	ResolveAddress(context.Context, schema.Coordinate) (Address, error)
}

var defaultResolver LocationResolver

type GeocodingLocationResolver struct {
	client   *maps.Client
	language string
}

func NewGeocodingLocationResolver(client *maps.Client, language string) *GeocodingLocationResolver {
	return &GeocodingLocationResolver{
		client:   client,
		language: language,
	}
}

func (g *GeocodingLocationResolver) ResolveAddress(ctx context.Context, c schema.Coordinate) (Address, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: c.Latitude,
			Lng: c.Longitude,
		},
		Language: g.language,
	})
	if nil != err {
		return Address{}, err
	}

	if len(geos) == 0 {
		return Address{}, ErrNoGeoInfoFound
	}

	addr := Address{Formatted: geos[0].FormattedAddress}
	for _, a := range geos[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "administrative_area_level_1":
			addr.Province = a.LongName
		case "administrative_area_level_2":
			addr.Canton = a.LongName
		case "administrative_area_level_3", "locality":
			if addr.District == "" {
				addr.District = a.LongName
			}
		case "country":
			addr.Country = a.LongName
		}
	}

	return addr, nil
}

// CachedLocationResolver remembers resolved addresses. Points closer than
// about a meter share an entry.
type CachedLocationResolver struct {
	resolver LocationResolver
	cache    *cache.Cache
}

func NewCachedLocationResolver(resolver LocationResolver, ttl time.Duration) *CachedLocationResolver {
	return &CachedLocationResolver{
		resolver: resolver,
		cache:    cache.New(ttl, 2*ttl),
	}
}

func (r *CachedLocationResolver) ResolveAddress(ctx context.Context, c schema.Coordinate) (Address, error) {
	key := fmt.Sprintf("%.5f,%.5f", c.Latitude, c.Longitude)
	if x, found := r.cache.Get(key); found {
		return x.(Address), nil
	}

	addr, err := r.resolver.ResolveAddress(ctx, c)
	if err != nil {
		return Address{}, err
	}

	r.cache.SetDefault(key, addr)
	return addr, nil
}

func SetLocationResolver(resolver LocationResolver) {
	defaultResolver = resolver
}

// ResolveAddress resolves with the resolver set by SetLocationResolver.
func ResolveAddress(ctx context.Context, c schema.Coordinate) (Address, error) {
	if defaultResolver == nil {
		return Address{}, ErrResolverNotInitialized
	}

	addr, err := defaultResolver.ResolveAddress(ctx, c)
	if err != nil {
		log.WithField("prefix", geoLogPrefix).Warnf("resolve %s with error: %s", c.MapLink(), err)
	}
	return addr, err
}
