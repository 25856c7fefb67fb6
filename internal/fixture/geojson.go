package fixture

import (
	"fmt"

	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/paulmach/orb/geojson"
)

// RenderGeoJSON renders table as a GeoJSON FeatureCollection with one feature
// per record, in table order. Every feature carries the record kind, its index
// in the table, its WKT and its hex WKB as properties.
func RenderGeoJSON(table models.Table) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	for i, rec := range table.Records {
		og, err := codec.ToOrb(rec.Geometry)
		if err != nil {
			return nil, fmt.Errorf("failed to convert record %d: %w", i, err)
		}

		feature := geojson.NewFeature(og)
		feature.Properties["kind"] = rec.Kind().String()
		feature.Properties["index"] = i
		feature.Properties["wkt"] = rec.WKT
		feature.Properties["wkb"] = rec.WKBHex
		fc.Append(feature)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feature collection: %w", err)
	}

	return data, nil
}
