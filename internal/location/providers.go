package location

import (
	"context"
	"errors"

	"workplace-geo/internal/providers/geonames"
	"workplace-geo/internal/providers/zippopotam"
	"workplace-geo/internal/types"
)

// ErrNotFound is returned by providers that know no places for a query.
// It is never retried.
var ErrNotFound = errors.New("no postal codes found")

type zippopotamProvider struct {
	client *zippopotam.Client
}

// NewZippopotamProvider adapts a zippopotam client to PostalCodeProvider
func NewZippopotamProvider(client *zippopotam.Client) PostalCodeProvider {
	return &zippopotamProvider{client: client}
}

func (p *zippopotamProvider) Name() string { return zippopotam.ProviderName }

func (p *zippopotamProvider) SearchByCity(ctx context.Context, countryCode, city string) ([]types.PostalCodeOption, error) {
	resp, err := p.client.SearchByCity(ctx, countryCode, city)
	if err != nil {
		return nil, translateNotFound(err, zippopotam.ErrNotFound)
	}
	return translateZippopotam(resp), nil
}

func (p *zippopotamProvider) LookupPostalCode(ctx context.Context, countryCode, postalCode string) ([]types.PostalCodeOption, error) {
	resp, err := p.client.LookupPostalCode(ctx, countryCode, postalCode)
	if err != nil {
		return nil, translateNotFound(err, zippopotam.ErrNotFound)
	}
	return translateZippopotam(resp), nil
}

// translateZippopotam converts places to options. Postal code lookups carry the
// code at the top level, city searches carry it per place.
func translateZippopotam(resp *zippopotam.PlacesAPIResponse) []types.PostalCodeOption {
	out := make([]types.PostalCodeOption, 0, len(resp.Places))
	for _, place := range resp.Places {
		code := place.PostCode
		if code == "" {
			code = resp.PostCode
		}
		if code == "" {
			continue
		}
		opt := types.NewPostalCodeOption(code, place.PlaceName, zippopotam.ProviderName)
		opt.State = place.State
		opt.StateCode = place.StateAbbreviation
		if coords, err := types.ParseCoords(place.Latitude, place.Longitude); err == nil {
			opt.Latitude, opt.Longitude = coords.Pointers()
		}
		out = append(out, opt)
	}
	return out
}

type geonamesProvider struct {
	client *geonames.Client
}

// NewGeonamesProvider adapts a geonames client to PostalCodeProvider
func NewGeonamesProvider(client *geonames.Client) PostalCodeProvider {
	return &geonamesProvider{client: client}
}

func (p *geonamesProvider) Name() string { return geonames.ProviderName }

func (p *geonamesProvider) SearchByCity(ctx context.Context, countryCode, city string) ([]types.PostalCodeOption, error) {
	resp, err := p.client.SearchByCity(ctx, countryCode, city)
	if err != nil {
		return nil, translateNotFound(err, geonames.ErrNotFound)
	}
	return translateGeonames(resp), nil
}

func (p *geonamesProvider) LookupPostalCode(ctx context.Context, countryCode, postalCode string) ([]types.PostalCodeOption, error) {
	resp, err := p.client.LookupPostalCode(ctx, countryCode, postalCode)
	if err != nil {
		return nil, translateNotFound(err, geonames.ErrNotFound)
	}
	return translateGeonames(resp), nil
}

func translateGeonames(resp *geonames.PostalCodeSearchAPIResponse) []types.PostalCodeOption {
	out := make([]types.PostalCodeOption, 0, len(resp.PostalCodes))
	for _, pc := range resp.PostalCodes {
		if pc.PostalCode == "" {
			continue
		}
		opt := types.NewPostalCodeOption(pc.PostalCode, pc.PlaceName, geonames.ProviderName)
		opt.State = pc.AdminName1
		opt.StateCode = pc.AdminCode1
		if pc.Lat != 0 || pc.Lng != 0 {
			opt.Latitude, opt.Longitude = types.NewCoords(pc.Lat, pc.Lng).Pointers()
		}
		out = append(out, opt)
	}
	return out
}

func translateNotFound(err, providerNotFound error) error {
	if errors.Is(err, providerNotFound) {
		return ErrNotFound
	}
	return err
}
