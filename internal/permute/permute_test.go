package permute

import (
	"reflect"
	"testing"
)

func TestPlacements(t *testing.T) {
	tests := []struct {
		name string
		k    int
		n    int
		want []Placement
	}{
		{
			name: "Test case 1: Empty pool yields the single all-absent placement",
			k:    0,
			n:    2,
			want: []Placement{{Absent, Absent}},
		},
		{
			name: "Test case 2: One item over two positions",
			k:    1,
			n:    2,
			want: []Placement{{Absent, 0}, {0, Absent}},
		},
		{
			name: "Test case 3: Full pool over matching positions",
			k:    2,
			n:    2,
			want: []Placement{{0, 1}, {1, 0}},
		},
		{
			name: "Test case 4: One item over three positions",
			k:    1,
			n:    3,
			want: []Placement{{Absent, Absent, 0}, {Absent, 0, Absent}, {0, Absent, Absent}},
		},
		{
			name: "Test case 5: Oversized pool places every ordered pair",
			k:    3,
			n:    2,
			want: []Placement{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}},
		},
		{
			name: "Test case 6: Zero positions",
			k:    2,
			n:    0,
			want: []Placement{{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placements(tt.k, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Placements(%d, %d) = %v, want %v", tt.k, tt.n, got, tt.want)
			}
		})
	}
}

func TestPlacementsCount(t *testing.T) {
	// n! / (n-k)! placements for k items over n positions.
	tests := []struct {
		name string
		k    int
		n    int
		want int
	}{
		{name: "Test case 1: 2 over 4", k: 2, n: 4, want: 12},
		{name: "Test case 2: 3 over 3", k: 3, n: 3, want: 6},
		{name: "Test case 3: 4 over 5", k: 4, n: 5, want: 120},
		{name: "Test case 4: 5 over 5", k: 5, n: 5, want: 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(Placements(tt.k, tt.n)); got != tt.want {
				t.Errorf("len(Placements(%d, %d)) = %d, want %d", tt.k, tt.n, got, tt.want)
			}
		})
	}
}

func TestPlacementsInjective(t *testing.T) {
	for _, p := range Placements(3, 4) {
		seen := map[int]bool{}
		placed := 0
		for _, idx := range p {
			if idx == Absent {
				continue
			}
			if seen[idx] {
				t.Fatalf("placement %v uses index %d twice", p, idx)
			}
			seen[idx] = true
			placed++
		}
		if placed != 3 {
			t.Fatalf("placement %v places %d items, want 3", p, placed)
		}
	}
}

func TestPlacementsDeterministic(t *testing.T) {
	first := Placements(3, 3)
	second := Placements(3, 3)
	if !reflect.DeepEqual(first, second) {
		t.Error("Placements enumeration order is not reproducible")
	}
}

func TestLeftover(t *testing.T) {
	tests := []struct {
		name      string
		placement Placement
		k         int
		want      []int
	}{
		{
			name:      "Test case 1: Pool fits, nothing left over",
			placement: Placement{0, 1, Absent},
			k:         2,
			want:      nil,
		},
		{
			name:      "Test case 2: Oversized pool leaves the unused index",
			placement: Placement{2, 0},
			k:         3,
			want:      []int{1},
		},
		{
			name:      "Test case 3: Zero positions leave everything",
			placement: Placement{},
			k:         2,
			want:      []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.placement.Leftover(tt.k); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Leftover(%d) = %v, want %v", tt.k, got, tt.want)
			}
		})
	}
}
