package assets

import (
	"image/color"

	"github.com/automoto/stork/shared/worldgen"
)

// Missing is drawn for asset keys with no entry.
var Missing = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// palette resolves world asset keys to flat colours. Sprites can replace
// these without touching the world generator.
var palette = map[string]color.RGBA{
	worldgen.Countryside.AssetKey():    {R: 118, G: 170, B: 82, A: 255},
	worldgen.Village.AssetKey():        {R: 168, G: 160, B: 96, A: 255},
	worldgen.CityMinor.AssetKey():      {R: 150, G: 140, B: 128, A: 255},
	worldgen.CityMajor.AssetKey():      {R: 120, G: 116, B: 112, A: 255},
	worldgen.CityMetropolis.AssetKey(): {R: 92, G: 90, B: 100, A: 255},

	worldgen.Small.AssetKey():  {R: 196, G: 98, B: 64, A: 255},
	worldgen.Medium.AssetKey(): {R: 170, G: 72, B: 56, A: 255},
	worldgen.Large.AssetKey():  {R: 130, G: 60, B: 70, A: 255},

	FlyerKey: {R: 245, G: 245, B: 240, A: 255},
	BeakKey:  {R: 235, G: 120, B: 40, A: 255},
}

const (
	FlyerKey = "stork"
	BeakKey  = "stork/beak"
)

// Color returns the colour for key, or Missing.
func Color(key string) color.RGBA {
	if c, ok := palette[key]; ok {
		return c
	}
	return Missing
}
