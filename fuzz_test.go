//go:build go1.18

package downsize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	downsize "github.com/KimNorgaard/go-downsize"
	"github.com/KimNorgaard/go-downsize/value"
)

func FuzzRoundTrip(f *testing.F) {
	// Seed the corpus with the JSON documents from the testdata directory.
	seedFiles, err := filepath.Glob("testdata/*.json")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}

	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add([]byte("{}"))
	f.Add([]byte("[]"))
	f.Add([]byte("null"))
	f.Add([]byte(`"a simple string"`))
	f.Add([]byte("12345"))
	f.Add([]byte("true"))
	f.Add([]byte(`{"0":"a","1":{"s":"x","n":1}}`))
	f.Add([]byte(`{"a":1,"a":"b"}`))

	f.Fuzz(func(t *testing.T, data []byte) {
		// 1. Anything that is not valid JSON is rejected with an error;
		// the fuzz engine catches panics on its own.
		original, err := downsize.Parse(data)
		if err != nil {
			return
		}

		// 2. Valid input must always optimize.
		optimized, err := downsize.OptimizeJSON(data)
		require.NoError(t, err, "OptimizeJSON failed for input that parses")

		// 3. The optimized text must parse back to the same content.
		reparsed, err := downsize.Parse(optimized)
		require.NoError(t, err, "Parse failed on our own optimized output")
		require.True(t, value.Equal(original, reparsed), "content changed by optimization")

		// 4. Optimizing is idempotent.
		again, err := downsize.OptimizeJSON(optimized)
		require.NoError(t, err)
		require.Equal(t, string(optimized), string(again))

		// 5. Rebuilding gives the same Go values as normalizing the input.
		want, err := downsize.Normalize(original, downsize.MapShape)
		require.NoError(t, err)
		got, err := downsize.Rebuild(optimized, downsize.MapShape)
		require.NoError(t, err)
		require.Equal(t, want, got, "Value is not the same after an optimize/rebuild round trip")
	})
}
