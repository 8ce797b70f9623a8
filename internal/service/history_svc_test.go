package service

import "testing"

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults applied", 0, 0, 1, DefaultHistoryLimit},
		{"negative page", -3, 10, 1, 10},
		{"valid passthrough", 2, 25, 2, 25},
		{"limit clamped to max", 1, 500, 1, MaxHistoryLimit},
		{"limit at max", 1, MaxHistoryLimit, 1, MaxHistoryLimit},
		{"negative limit", 1, -1, 1, DefaultHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePage(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"empty", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"limit one", 7, 1, 7},
		{"fewer than limit", 3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.limit); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestTotalPages_ConsistentWithSlicing(t *testing.T) {
	// Every item index must fall on exactly one page.
	for total := 0; total <= 55; total++ {
		for _, limit := range []int{1, 7, 10, 50} {
			pages := TotalPages(total, limit)
			covered := 0
			for p := 1; p <= pages; p++ {
				start := (p - 1) * limit
				end := start + limit
				if end > total {
					end = total
				}
				covered += end - start
			}
			if covered != total {
				t.Fatalf("total=%d limit=%d: pages cover %d items", total, limit, covered)
			}
		}
	}
}
