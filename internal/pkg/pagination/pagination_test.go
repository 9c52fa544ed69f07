package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		size  int
		want  int
	}{
		{name: "empty listing has one page", total: 0, size: 12, want: 1},
		{name: "partial page", total: 5, size: 12, want: 1},
		{name: "exact fit", total: 24, size: 12, want: 2},
		{name: "one over", total: 25, size: 12, want: 3},
		{name: "invalid size", total: 25, size: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumPages(tt.total, tt.size))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0, 3))
	assert.Equal(t, 1, Clamp(-4, 3))
	assert.Equal(t, 2, Clamp(2, 3))
	assert.Equal(t, 3, Clamp(999, 3))
	assert.Equal(t, 1, Clamp(5, 0))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, 1, ParseNumber(""))
	assert.Equal(t, 1, ParseNumber("abc"))
	assert.Equal(t, 7, ParseNumber("7"))
	assert.Equal(t, -2, ParseNumber("-2"))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 12))
	assert.Equal(t, 24, Offset(3, 12))
	assert.Equal(t, 0, Offset(0, 12))
}

func TestPageNavigation(t *testing.T) {
	p := Page[string]{Number: 2, TotalPages: 3}

	assert.True(t, p.HasPrevious())
	assert.True(t, p.HasNext())
	assert.Equal(t, 1, p.PreviousNumber())
	assert.Equal(t, 3, p.NextNumber())
	assert.Equal(t, []int{1, 2, 3}, p.Numbers())

	last := Page[string]{Number: 3, TotalPages: 3}
	assert.False(t, last.HasNext())

	first := Page[string]{Number: 1, TotalPages: 3}
	assert.False(t, first.HasPrevious())
}
