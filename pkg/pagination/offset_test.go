package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		in       OffsetRequest
		expected OffsetRequest
	}{
		{"defaults", OffsetRequest{}, OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"negative", OffsetRequest{Page: -2, Size: -1}, OffsetRequest{Page: 1, Size: PageDefaultSize}},
		{"capped", OffsetRequest{Page: 3, Size: PageMaxSize + 1}, OffsetRequest{Page: 3, Size: PageMaxSize}},
		{"kept", OffsetRequest{Page: 2, Size: 10}, OffsetRequest{Page: 2, Size: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.in
			assert.NoError(t, r.Validate())
			assert.Equal(t, tt.expected, r)
		})
	}
}

func TestOffsetRequest_Offset(t *testing.T) {
	r := OffsetRequest{Page: 3, Size: 10}
	assert.Equal(t, 20, r.Offset())
}

func TestNewOffsetResult(t *testing.T) {
	res := NewOffsetResult([]int{1, 2}, 5, 1, 2)
	assert.True(t, res.HasMore)

	res = NewOffsetResult([]int{5}, 5, 3, 2)
	assert.False(t, res.HasMore)
}
