package core

import (
	"math"
	"testing"
)

func TestSphericalToCartesian(t *testing.T) {
	if v := SphericalToCartesian(0, 0); v.Sub(NewVec3(0, 1, 0)).Len() > 1e-12 {
		t.Errorf("Expected (0,1,0), got %v", v)
	}

	q := math.Pi / 4
	expected := NewVec3(math.Cos(q)*math.Sin(q), math.Cos(q), math.Sin(q)*math.Sin(q))
	if v := SphericalToCartesian(q, q); v.Sub(expected).Len() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, v)
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	sampler := NewSampler(42)

	for i := 0; i < 1000; i++ {
		dir, pdf := SampleCosineHemisphere(sampler.Get2D())

		if math.Abs(dir.Len()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %f", dir.Len())
		}
		if dir.Y() < 0 {
			t.Fatalf("Expected direction in upper hemisphere, got %v", dir)
		}
		if math.Abs(pdf-dir.Y()/math.Pi) > 1e-9 {
			t.Fatalf("PDF mismatch: got %f, expected %f", pdf, dir.Y()/math.Pi)
		}
	}
}

func TestSampleCosineHemisphere_MeanCosine(t *testing.T) {
	// E[cos θ] for a cosine-weighted hemisphere is 2/3
	sampler := NewSampler(7)
	const n = 50000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir, _ := SampleCosineHemisphere(sampler.Get2D())
		sum += dir.Y()
	}
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("Expected mean cosine near 2/3, got %f", mean)
	}
}

func TestReflect(t *testing.T) {
	n := NewVec3(0, 1, 0)
	wo := mustNormalize(NewVec3(1, 1, 0))
	wi := Reflect(wo, n)
	expected := mustNormalize(NewVec3(-1, 1, 0))
	if wi.Sub(expected).Len() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, wi)
	}
	if math.Abs(AbsCosTheta(wi)-AbsCosTheta(wo)) > 1e-12 {
		t.Errorf("Reflection should preserve the angle to the normal")
	}
}
