package wael

import (
	"math"

	"github.com/san-kum/genart/internal/color"
	"github.com/san-kum/genart/internal/geom"
	"github.com/san-kum/genart/internal/packing"
	"github.com/san-kum/genart/internal/random"
)

var FleshColor = color.RGB(0.96, 0.80, 0.69)

type pupilKind int

const (
	roundPupil pupilKind = iota
	slitPupil
)

var pupilKinds = []pupilKind{roundPupil, slitPupil}

// RandomEye builds an eye of the given radius centred at pos. The iris, if
// any, bounds the pupil size.
func RandomEye(rng *random.Rand, pos geom.Point, size float64) *Eye {
	iris := RandomIris(rng, size)
	maxPupil := size
	if iris != nil {
		maxPupil = iris.Size
	}
	pupil := RandomPupil(rng, maxPupil)
	rotation := rng.Uniform(0, math.Pi)
	eyelids := RandomEyelids(rng, size)

	return &Eye{
		Pos:      pos,
		Size:     size,
		Color:    color.White,
		Pupil:    pupil,
		Iris:     iris,
		Eyelids:  eyelids,
		Rotation: rotation,
	}
}

func RandomPupil(rng *random.Rand, maxSize float64) Pupil {
	switch random.Pick(rng, pupilKinds) {
	case slitPupil:
		lo := 0.5 * maxSize
		size := rng.Triangular(lo, (lo+maxSize)/2, maxSize)
		return SlitPupil{Size: size, Width: rng.Uniform(1, size)}
	default:
		lo, hi := 1.0, 0.8*maxSize
		if hi < lo {
			hi = lo
		}
		return RoundPupil{Size: rng.Triangular(lo, (lo+hi)/2, hi)}
	}
}

// RandomIris returns nil for about half of the eyes.
func RandomIris(rng *random.Rand, maxSize float64) *Iris {
	if rng.Uniform(0, 1) <= 0.5 {
		return nil
	}
	size := rng.Triangular(maxSize/2, 0.75*maxSize, maxSize)
	return &Iris{Size: size, Gradient: RandomRadialGradient(rng)}
}

// RandomEyelids returns nil for about three quarters of the eyes.
func RandomEyelids(rng *random.Rand, maxSize float64) *Eyelids {
	if rng.Uniform(0, 1) <= 0.75 {
		return nil
	}
	size := maxSize + rng.Uniform(0, 0.5*maxSize)
	opening := rng.Uniform(0.5*maxSize, maxSize)
	return &Eyelids{Size: size, Opening: opening, Color: FleshColor}
}

func RandomRadialGradient(rng *random.Rand) color.RadialGradient {
	stops := make([]color.Color, 2)
	for i := range stops {
		stops[i] = color.RGB(rng.Float64(), rng.Float64(), rng.Float64())
	}
	return color.RadialGradient{Stops: stops}
}

// Fill packs the canvas with circles and puts an eye into each of them.
func Fill(rng *random.Rand, width, height float64, opts packing.Options) ([]*Eye, error) {
	circles, err := packing.Pack(rng, width, height, opts)
	if err != nil {
		return nil, err
	}

	eyes := make([]*Eye, 0, len(circles))
	for _, c := range circles {
		eyes = append(eyes, RandomEye(rng, c.Pos, c.R))
	}
	return eyes, nil
}
