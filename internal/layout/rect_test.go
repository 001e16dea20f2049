package layout

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15.5)

	if r.X != 5 || r.Y != 10 || r.Width != 20 || r.Height != 15.5 {
		t.Errorf("NewRect() = %+v, want {5 10 20 15.5}", r)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 10, 2.5),
			right:  10.5,
			bottom: 2.75,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_AreaAndEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		area  float64
		empty bool
	}

	tests := map[string]tc{
		"standard rect":  {rect: NewRect(0, 0, 4, 2.5), area: 10},
		"zero width":     {rect: NewRect(0, 0, 0, 10), area: 0, empty: true},
		"zero height":    {rect: NewRect(0, 0, 10, 0), area: 0, empty: true},
		"negative width": {rect: NewRect(0, 0, -3, 10), area: 0, empty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
			if got := tt.rect.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	type tc struct {
		p        Point
		expected bool
	}

	tests := map[string]tc{
		"inside":        {p: Point{X: 20, Y: 30}, expected: true},
		"top-left edge": {p: Point{X: 10, Y: 20}, expected: true},
		"right edge":    {p: Point{X: 40, Y: 30}, expected: false},
		"bottom edge":   {p: Point{X: 20, Y: 60}, expected: false},
		"left of rect":  {p: Point{X: 9.99, Y: 30}, expected: false},
		"just inside":   {p: Point{X: 39.99, Y: 59.99}, expected: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.p.X, tt.p.Y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.p.X, tt.p.Y, got, tt.expected)
			}
			if got := tt.p.In(r); got != tt.expected {
				t.Errorf("Point.In() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_String(t *testing.T) {
	if got := NewRect(30, 10, 70.5, 80).String(); got != "[30, 10, 70.5, 80]" {
		t.Errorf("String() = %q, want %q", got, "[30, 10, 70.5, 80]")
	}
}
