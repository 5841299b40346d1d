package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCosine_Symmetric(t *testing.T) {
	pairs := [][2][]float32{
		{{1, 0, 0}, {0, 1, 0}},
		{{0.3, 0.7, 0.2}, {0.1, 0.9, 0.4}},
		{{-1, 2, -3}, {4, -5, 6}},
	}
	for _, p := range pairs {
		ab, err := Cosine(p[0], p[1])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := Cosine(p[1], p[0])
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(ab-ba) > 1e-12 {
			t.Errorf("cosine not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestCosine_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"scaled", []float32{1, 1}, []float32{3, 3}, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCosine_ZeroVector(t *testing.T) {
	_, err := Cosine([]float32{0, 0, 0}, []float32{1, 2, 3})
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
	_, err = Cosine([]float32{1, 2, 3}, []float32{0, 0, 0})
	if !errors.Is(err, ErrZeroVector) {
		t.Errorf("expected ErrZeroVector, got %v", err)
	}
}

func TestCosine_DimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1, 2}, []float32{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestRoundPercent(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.95, 95},
		{0.954, 95},
		{0.955, 96},
		{0.0, 0},
		{1.0, 100},
		{0.333, 33},
	}
	for _, tt := range tests {
		if got := RoundPercent(tt.score); got != tt.want {
			t.Errorf("RoundPercent(%v) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		score float64
		want  Category
	}{
		{0.95, CategoryHigh},
		{0.8, CategoryHigh},
		{0.79, CategoryMedium},
		{0.5, CategoryMedium},
		{0.49, CategoryLow},
		{0.0, CategoryLow},
		{-0.2, CategoryLow},
	}
	for _, tt := range tests {
		if got := Categorize(tt.score); got != tt.want {
			t.Errorf("Categorize(%v) = %s, expected %s", tt.score, got, tt.want)
		}
	}
}
