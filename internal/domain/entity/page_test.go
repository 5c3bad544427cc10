package entity

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        PageRequest
		total      int64
		wantPages  int
		wantOffset int
	}{
		{"empty", PageRequest{Page: 0, Size: 10}, 0, 0, 0},
		{"exact", PageRequest{Page: 1, Size: 10}, 20, 2, 10},
		{"remainder", PageRequest{Page: 2, Size: 10}, 21, 3, 20},
		{"zero size", PageRequest{Page: 0, Size: 0}, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPage[int](nil, tt.req, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.total, p.TotalElements)
			assert.Equal(t, tt.req.Page, p.PageNumber)
			assert.NotNil(t, p.Content)
			assert.Equal(t, tt.wantOffset, tt.req.Offset())
		})
	}
}

func TestMapPage(t *testing.T) {
	t.Parallel()

	p := NewPage([]int{1, 2}, PageRequest{Page: 0, Size: 2}, 5)
	mapped := MapPage(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, mapped.Content)
	assert.Equal(t, 3, mapped.TotalPages)
	assert.Equal(t, int64(5), mapped.TotalElements)
}
