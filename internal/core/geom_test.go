package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // Inside
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Just inside bottom-right
		{30, 30, false}, // Bottom-right corner (exclusive)
		{5, 15, false},  // Left of rect
		{35, 15, false}, // Right of rect
		{15, 5, false},  // Above rect
		{15, 35, false}, // Below rect
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // Within range
		{-5, 0, 10, 0},  // Below min
		{15, 0, 10, 10}, // Above max
		{0, 0, 10, 0},   // At min
		{10, 0, 10, 10}, // At max
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Errorf("Min(3, 5) = %d, expected 3", Min(3, 5))
	}
	if Min(5, 3) != 3 {
		t.Errorf("Min(5, 3) = %d, expected 3", Min(5, 3))
	}
	if Max(3, 5) != 5 {
		t.Errorf("Max(3, 5) = %d, expected 5", Max(3, 5))
	}
	if Max(5, 3) != 5 {
		t.Errorf("Max(5, 3) = %d, expected 5", Max(5, 3))
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Errorf("Abs(5) = %d, expected 5", Abs(5))
	}
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) = %d, expected 5", Abs(-5))
	}
	if Abs(0) != 0 {
		t.Errorf("Abs(0) = %d, expected 0", Abs(0))
	}
}
