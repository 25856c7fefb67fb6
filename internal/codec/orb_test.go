package codec_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/fixturegen/internal/codec"
	"github.com/UnknownOlympus/fixturegen/internal/models"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrbCodec_Marshal(t *testing.T) {
	t.Parallel()

	c := codec.NewOrbCodec(slog.Default())
	line := models.LineString{Coords: []models.Coordinate{{X: 0.5, Y: -0.25}, {X: 0.1, Y: 0.1}}}

	text, err := c.MarshalWKT(line)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING(0.5 -0.25,0.1 0.1)", text)

	og, err := codec.ToOrb(line)
	require.NoError(t, err)
	assert.Equal(t, orb.LineString{{0.5, -0.25}, {0.1, 0.1}}, og)
}

func TestOrbCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := codec.NewOrbCodec(slog.Default())

	for _, g := range sampleGeometries(t, 3, 4) {
		data, err := c.MarshalWKB(g)
		require.NoError(t, err)
		fromWKB, err := c.UnmarshalWKB(data)
		require.NoError(t, err)
		assert.Equal(t, g, fromWKB)

		text, err := c.MarshalWKT(g)
		require.NoError(t, err)
		fromWKT, err := c.UnmarshalWKT(text)
		require.NoError(t, err)
		assert.Equal(t, g, fromWKT, text)
	}
}

func TestOrbCodec_Errors(t *testing.T) {
	t.Parallel()

	c := codec.NewOrbCodec(slog.Default())

	g, err := c.UnmarshalWKB([]byte{0x00})
	require.Nil(t, g)
	require.ErrorIs(t, err, codec.ErrCodec)

	g, err = c.UnmarshalWKT("CIRCULARSTRING(0 0,1 1,2 0)")
	require.Nil(t, g)
	require.ErrorIs(t, err, codec.ErrCodec)

	g, err = codec.FromOrb(orb.Bound{})
	require.Nil(t, g)
	require.ErrorIs(t, err, codec.ErrUnsupportedGeometry)

	og, err := codec.ToOrb(nil)
	require.Nil(t, og)
	require.ErrorIs(t, err, codec.ErrUnsupportedGeometry)
}
