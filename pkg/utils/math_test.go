package utils

import "testing"

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 2}, {0, 2}, {1, 2}, {2, 2}, {3, 4}, {64, 64}, {65, 128}, {1000, 1024},
	}

	for _, tt := range tests {
		if got := CeilToPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("CeilToPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	for n, want := range map[int]bool{-4: false, 0: false, 1: true, 2: true, 6: false, 1024: true} {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		name   string
		oldCap int
		minCap int
		want   int
	}{
		{"unallocated_small", 0, 1, minGrowCapacity},
		{"unallocated_large", 0, 100, 128},
		{"double", 8, 9, 16},
		{"jump", 8, 40, 64},
		{"double_exact", 16, 32, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowCapacity(tt.oldCap, tt.minCap)
			if got != tt.want {
				t.Errorf("GrowCapacity(%d, %d) = %d, want %d", tt.oldCap, tt.minCap, got, tt.want)
			}
			if !IsPowerOfTwo(got) {
				t.Errorf("GrowCapacity(%d, %d) = %d is not a power of two", tt.oldCap, tt.minCap, got)
			}
		})
	}
}
