package downsize_test

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/value"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.json")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			actual, err := downsize.OptimizeJSON(src)
			require.NoError(t, err)

			goldenFile := strings.Replace(file, ".json", ".golden", 1)

			// To refresh the golden files, run: go test -run TestGolden -update
			if *update {
				err := os.WriteFile(goldenFile, append(actual, '\n'), 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")
			expected = bytes.TrimSuffix(expected, []byte("\n"))

			require.Equal(t, string(expected), string(actual), "Optimized output does not match golden file.")

			// The golden output is already optimized, so optimizing it again
			// must not change it.
			again, err := downsize.OptimizeJSON(expected)
			require.NoError(t, err)
			require.Equal(t, string(expected), string(again))

			before, err := downsize.Parse(src)
			require.NoError(t, err)
			after, err := downsize.Parse(expected)
			require.NoError(t, err)
			require.True(t, value.Equal(before, after), "golden file does not hold the same content as its input")
		})
	}
}
