package main

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/baldisbk/avgmeter"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		line          string
		value, weight float64
		wantErr       bool
	}{
		{line: "0.7", value: 0.7, weight: 1},
		{line: "6 2", value: 6, weight: 2},
		{line: "  -1.5\t4 ", value: -1.5, weight: 4},
		{line: "1e3 0.5", value: 1000, weight: 0.5},
		{line: "one", wantErr: true},
		{line: "1 two", wantErr: true},
		{line: "1 2 3", wantErr: true},
		{line: "", wantErr: true},
	}
	for _, tc := range testCases {
		value, weight, err := ParseLine(tc.line)
		if tc.wantErr {
			assert.Error(t, err, tc.line)
			continue
		}
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.value, value, tc.line)
		assert.Equal(t, tc.weight, weight, tc.line)
	}
}

func TestFeed(t *testing.T) {
	input := strings.NewReader(`
# smoke batch
2 1
4 1

not-a-number
6 2
`)
	meter := avgmeter.NewMeter()
	var calls []int
	num, err := Feed(context.Background(), zap.NewNop().Sugar(), input, meter, func(num int) {
		calls = append(calls, num)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, num)
	assert.Equal(t, []int{1, 2, 3}, calls)
	assert.Equal(t, 12.0, meter.Sum())
	assert.Equal(t, 4.0, meter.Count())
	assert.Equal(t, 3.0, meter.Average())
}

func TestFeedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	meter := avgmeter.NewMeter()
	num, err := Feed(ctx, zap.NewNop().Sugar(), strings.NewReader("1\n2\n3\n"), meter, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, num)
	assert.Equal(t, 0.0, meter.Count())
}
