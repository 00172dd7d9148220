package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-smallpt/pkg/core"
	"github.com/df07/go-smallpt/pkg/geometry"
	"github.com/df07/go-smallpt/pkg/material"
)

func TestNew_MaterialCountMismatch(t *testing.T) {
	shapes := []geometry.Shape{geometry.NewSphere(core.NewVec3(0, 0, 0), 1)}

	s, err := New(shapes, nil)
	if !errors.Is(err, ErrMaterialCountMismatch) {
		t.Fatalf("Expected ErrMaterialCountMismatch, got %v", err)
	}
	if s != nil {
		t.Errorf("Expected nil scene on error, got %v", s)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected MustNew to panic on mismatched lengths")
		}
	}()
	MustNew(nil, []material.Material{material.NewDiffuse(core.NewColor(1, 1, 1))})
}

func TestScene_HitResolvesNearestMaterial(t *testing.T) {
	b := NewBuilder()
	far := b.AddSphere(core.NewVec3(0, 0, -10), 1, material.NewEmissive(core.NewColor(1, 2, 3)))
	near := b.AddSphere(core.NewVec3(0, 0, -4), 1, material.NewDiffuse(core.NewColor(0.2, 0.4, 0.6)))
	s, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	hit, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.PrimIndex != near {
		t.Fatalf("Expected nearest primitive %d, got %d", near, hit.PrimIndex)
	}
	if s.HasEmission(hit.PrimIndex) {
		t.Error("Nearest primitive is not emissive")
	}

	lambertian, ok := s.BxDF(hit.PrimIndex).(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected *material.Lambertian, got %T", s.BxDF(hit.PrimIndex))
	}
	if lambertian.Albedo != core.NewColor(0.2, 0.4, 0.6) {
		t.Errorf("Expected albedo of nearest primitive, got %v", lambertian.Albedo)
	}

	if !s.HasEmission(far) || s.Emission(far) != core.NewColor(1, 2, 3) {
		t.Errorf("Expected far primitive to emit (1,2,3), got %v", s.Emission(far))
	}
}

func TestScene_HasEmissionRequiresAllChannels(t *testing.T) {
	b := NewBuilder()
	idx := b.AddSphere(core.NewVec3(0, 0, 0), 1, material.NewEmissive(core.NewColor(0, 5, 5)))
	s := MustNew(b.shapes, b.materials)

	// Emission in only two channels is treated as non-emissive
	if s.HasEmission(idx) {
		t.Error("Expected (0,5,5) emission to be non-emissive")
	}
	if s.LightCount() != 0 {
		t.Errorf("Expected no lights, got %d", s.LightCount())
	}
}

func TestScene_Defaults(t *testing.T) {
	s := MustNew(nil, nil)

	if s.Background() != core.NewColor(1, 1, 1) {
		t.Errorf("Expected white background, got %v", s.Background())
	}
	if _, isHit := s.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))); isHit {
		t.Error("Expected empty scene to miss")
	}

	dark := MustNew(nil, nil, WithBackground(core.NewColor(0.1, 0.2, 0.3)))
	if dark.Background() != core.NewColor(0.1, 0.2, 0.3) {
		t.Errorf("Expected configured background, got %v", dark.Background())
	}
}

func TestScene_BxDFFactory(t *testing.T) {
	b := NewBuilder()
	mirror := b.AddSphere(core.NewVec3(0, 0, 0), 1, material.NewMirror(core.NewColor(0.9, 0.9, 0.9)))
	matte := b.AddSphere(core.NewVec3(3, 0, 0), 1, material.NewDiffuse(core.NewColor(0.5, 0.5, 0.5)))

	reference, _ := b.Build()
	if _, ok := reference.BxDF(mirror).(*material.Lambertian); !ok {
		t.Errorf("Expected default factory to always build Lambertian, got %T", reference.BxDF(mirror))
	}

	specular, _ := b.Build(WithBxDFFactory(SpecularAwareBxDF))
	if _, ok := specular.BxDF(mirror).(*material.IdealSpecular); !ok {
		t.Errorf("Expected mirror material to build IdealSpecular, got %T", specular.BxDF(mirror))
	}
	if _, ok := specular.BxDF(matte).(*material.Lambertian); !ok {
		t.Errorf("Expected diffuse material to build Lambertian, got %T", specular.BxDF(matte))
	}
}

func TestScene_ShadingFrame(t *testing.T) {
	s := MustNew(nil, nil)
	hit := &geometry.GlobalHit{
		LocalHit: geometry.LocalHit{
			T:      1,
			Point:  core.NewVec3(1, 2, 3),
			Normal: core.NewVec3(0, 0, -1),
		},
	}
	wo := core.NewVec3(0, 0.6, -0.8)

	frame := s.ShadingFrame(wo, hit)
	if frame.Point != hit.Point {
		t.Errorf("Expected frame at %v, got %v", hit.Point, frame.Point)
	}
	if math.Abs(frame.Wo.Y()-0.8) > 1e-9 {
		t.Errorf("Expected local cos θo = 0.8, got %f", frame.Wo.Y())
	}
	if frame.LocalToWorld(frame.Wo).Sub(wo).Len() > 1e-9 {
		t.Errorf("Expected outgoing direction to round-trip")
	}
}

func TestBuilder_AddBoxFacesInward(t *testing.T) {
	white := material.NewDiffuse(core.NewColor(1, 1, 1))
	b := NewBuilder()
	b.AddBox(core.NewVec3(-1, -1, -1), 2, [6]material.Material{white, white, white, white, white, white})
	s, _ := b.Build()

	center := core.NewVec3(0, 0, 0)
	directions := []core.Vec3{
		core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
		core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0),
	}
	for i, dir := range directions {
		hit, isHit := s.Hit(core.NewRay(center, dir))
		if !isHit {
			t.Fatalf("Expected ray %v to hit a wall", dir)
		}
		if hit.PrimIndex != i {
			t.Errorf("Expected wall %d for direction %v, got %d", i, dir, hit.PrimIndex)
		}
		if hit.Normal.Dot(dir) >= 0 {
			t.Errorf("Wall %d normal %v does not face the interior", i, hit.Normal)
		}
	}
}
