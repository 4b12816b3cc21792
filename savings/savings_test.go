package savings_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/internal/testutil"
	"github.com/KimNorgaard/go-downsize/savings"
)

func TestGzipSize(t *testing.T) {
	data := []byte(strings.Repeat(`{"id":1,"name":"x"}`, 50))

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	size, err := savings.GzipSize(data, gzip.BestCompression)
	require.NoError(t, err)
	require.Equal(t, buf.Len(), size)
	require.Less(t, size, len(data), "repetitive input must compress")

	empty, err := savings.GzipSize(nil, gzip.DefaultCompression)
	require.NoError(t, err)
	require.Positive(t, empty, "gzip output always carries a header")

	_, err = savings.GzipSize(data, 42)
	require.Error(t, err)
}

func TestMeasure(t *testing.T) {
	original, err := testutil.Catalog()
	require.NoError(t, err)
	original = bytes.TrimSpace(original)

	optimized, err := downsize.OptimizeJSON(original)
	require.NoError(t, err)

	report, err := savings.Measure(original, optimized, savings.Level(6))
	require.NoError(t, err)
	require.Equal(t, len(original), report.OriginalSize)
	require.Equal(t, len(optimized), report.OptimizedSize)
	require.Equal(t, report.OriginalSize, report.OptimizedSize, "reordering never changes the raw size")
	require.Equal(t, 6, report.Level)

	origGz, err := savings.GzipSize(original, 6)
	require.NoError(t, err)
	optGz, err := savings.GzipSize(optimized, 6)
	require.NoError(t, err)
	require.Equal(t, origGz, report.OriginalGzip)
	require.Equal(t, optGz, report.OptimizedGzip)
	t.Logf("gzip %d -> %d bytes (%.2f%%)", report.OriginalGzip, report.OptimizedGzip, report.Improvement())

	want, err := downsize.Rebuild(original, downsize.MapShape)
	require.NoError(t, err)
	got, err := downsize.Rebuild(optimized, downsize.MapShape)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestMeasureDefaults(t *testing.T) {
	report, err := savings.Measure([]byte(`{"a":1}`), []byte(`{"a":1}`))
	require.NoError(t, err)
	require.Equal(t, gzip.DefaultCompression, report.Level)
	require.Equal(t, report.OriginalGzip, report.OptimizedGzip)
	require.Zero(t, report.Improvement())
}

func TestLevel(t *testing.T) {
	for _, level := range []int{gzip.HuffmanOnly, gzip.DefaultCompression, gzip.NoCompression, gzip.BestSpeed, gzip.BestCompression} {
		_, err := savings.Measure([]byte("{}"), []byte("{}"), savings.Level(level))
		require.NoError(t, err, "level %d", level)
	}
	for _, level := range []int{gzip.HuffmanOnly - 1, gzip.BestCompression + 1} {
		_, err := savings.Measure([]byte("{}"), []byte("{}"), savings.Level(level))
		require.EqualError(t, err, "savings: invalid compression level "+strconv.Itoa(level))
	}
}

func TestImprovement(t *testing.T) {
	testCases := []struct {
		name     string
		report   savings.Report
		expected float64
	}{
		{"Smaller", savings.Report{OriginalGzip: 200, OptimizedGzip: 150}, 25},
		{"Equal", savings.Report{OriginalGzip: 200, OptimizedGzip: 200}, 0},
		{"Larger", savings.Report{OriginalGzip: 100, OptimizedGzip: 110}, -10},
		{"Empty original", savings.Report{}, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.expected, tc.report.Improvement(), 1e-9)
		})
	}
}
