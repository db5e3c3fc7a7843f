package paging

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"默认值", 0, 0, 1, 20},
		{"负数页码", -3, 10, 1, 10},
		{"负数条数", 2, -1, 2, 20},
		{"上限截断", 1, 500, 1, 100},
		{"边界上限", 1, 100, 1, 100},
		{"边界下限", 1, 1, 1, 1},
		{"正常值", 7, 35, 7, 35},
		{"页码溢出截断", math.MaxInt, 20, math.MaxInt / 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := Normalize(tt.page, tt.pageSize)
			if page != tt.wantPage || pageSize != tt.wantPageSize {
				t.Errorf("Normalize(%d, %d) = (%d, %d), expected (%d, %d)",
					tt.page, tt.pageSize, page, pageSize, tt.wantPage, tt.wantPageSize)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page     int
		pageSize int
		expected int
	}{
		{1, 20, 0},
		{3, 20, 40},
		{0, 0, 0},
		{2, 1000, 100},
		{math.MaxInt, 20, (math.MaxInt/20 - 1) * 20},
		{math.MaxInt/20 + 2, 20, (math.MaxInt/20 - 1) * 20},
	}

	for _, tt := range tests {
		if got := Offset(tt.page, tt.pageSize); got != tt.expected {
			t.Errorf("Offset(%d, %d) = %d, expected %d", tt.page, tt.pageSize, got, tt.expected)
		}
	}
}

func TestTotalPages(t *testing.T) {
	const total = 45

	if got := TotalPages(total, 20); got != 3 {
		t.Errorf("TotalPages(45, 20) = %d, expected 3", got)
	}
	if got := TotalPages(0, 20); got != 0 {
		t.Errorf("TotalPages(0, 20) = %d, expected 0", got)
	}

	// 第 4 页的偏移量已超过总数
	if offset := Offset(4, 20); offset < total {
		t.Errorf("Offset(4, 20) = %d, expected >= %d", offset, total)
	}
}
