package selection

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		last, index int
		expected    Direction
	}{
		{"same row increasing", 5, 7, 8, DirectionRight},
		{"same row decreasing", 5, 7, 6, DirectionLeft},
		{"same column decreasing", 5, 7, 2, DirectionUp},
		{"same column increasing", 5, 7, 12, DirectionDown},
		{"same row far", 5, 5, 9, DirectionRight},
		{"diagonal", 5, 7, 13, DirectionNone},
		{"row wrap", 4, 3, 4, DirectionNone},
		{"first cell as last", 4, 0, 1, DirectionRight},
		{"first cell column", 4, 0, 4, DirectionDown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.size, tc.last, tc.index)
			if got != tc.expected {
				t.Errorf("classify(%d, %d, %d) = %v, expected %v", tc.size, tc.last, tc.index, got, tc.expected)
			}
		})
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name        string
		last, index int
		dir         Direction
		expected    bool
	}{
		{"right step", 6, 7, DirectionRight, true},
		{"right two steps", 6, 8, DirectionRight, false},
		{"left step", 6, 5, DirectionLeft, true},
		{"left as right", 6, 5, DirectionRight, false},
		{"up step", 6, 2, DirectionUp, true},
		{"down step", 6, 10, DirectionDown, true},
		{"down two rows", 6, 14, DirectionDown, false},
		{"any right", 6, 7, DirectionNone, true},
		{"any up", 6, 2, DirectionNone, true},
		{"any row wrap", 3, 4, DirectionNone, true},
		{"any diagonal", 6, 11, DirectionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := adjacent(4, tc.last, tc.index, tc.dir)
			if got != tc.expected {
				t.Errorf("adjacent(4, %d, %d, %v) = %v, expected %v", tc.last, tc.index, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d        Direction
		expected string
	}{
		{DirectionNone, "none"},
		{DirectionRight, "right"},
		{DirectionLeft, "left"},
		{DirectionUp, "up"},
		{DirectionDown, "down"},
		{Direction(42), "unknown"},
	}

	for _, tc := range tests {
		if tc.d.String() != tc.expected {
			t.Errorf("Direction(%d).String() = %q, expected %q", int(tc.d), tc.d.String(), tc.expected)
		}
	}

	if DirectionNone.IsSet() {
		t.Error("DirectionNone should not be set")
	}
	if !DirectionDown.IsSet() {
		t.Error("DirectionDown should be set")
	}
}
