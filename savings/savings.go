// Package savings measures how much an optimized JSON document gains under
// gzip compared to the original.
package savings

import (
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// Report holds the sizes of an original and an optimized document, raw and
// gzip-compressed.
type Report struct {
	OriginalSize  int `json:"originalSize"`
	OptimizedSize int `json:"optimizedSize"`
	OriginalGzip  int `json:"originalGzip"`
	OptimizedGzip int `json:"optimizedGzip"`
	Level         int `json:"level"`
}

// Improvement returns the reduction of the compressed size in percent.
// A negative result means the optimized document compresses worse.
func (r Report) Improvement() float64 {
	if r.OriginalGzip == 0 {
		return 0
	}
	return 100 * (1 - float64(r.OptimizedGzip)/float64(r.OriginalGzip))
}

// Option configures Measure.
type Option func(*options) error

type options struct {
	level int
}

// Level sets the gzip compression level, from gzip.HuffmanOnly to
// gzip.BestCompression. The default is gzip.DefaultCompression.
func Level(level int) Option {
	return func(o *options) error {
		if level < gzip.HuffmanOnly || level > gzip.BestCompression {
			return fmt.Errorf("savings: invalid compression level %d", level)
		}
		o.level = level
		return nil
	}
}

// Measure compresses both documents and reports their sizes.
func Measure(original, optimized []byte, opts ...Option) (Report, error) {
	o := options{level: gzip.DefaultCompression}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Report{}, err
		}
	}

	origGz, err := GzipSize(original, o.level)
	if err != nil {
		return Report{}, err
	}
	optGz, err := GzipSize(optimized, o.level)
	if err != nil {
		return Report{}, err
	}
	return Report{
		OriginalSize:  len(original),
		OptimizedSize: len(optimized),
		OriginalGzip:  origGz,
		OptimizedGzip: optGz,
		Level:         o.level,
	}, nil
}

// GzipSize returns the size of data after gzip compression at level.
func GzipSize(data []byte, level int) (int, error) {
	var cw countingWriter
	zw, err := gzip.NewWriterLevel(&cw, level)
	if err != nil {
		return 0, fmt.Errorf("savings: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return 0, fmt.Errorf("savings: compressing: %w", err)
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("savings: compressing: %w", err)
	}
	return cw.n, nil
}

// countingWriter discards its input and counts the bytes.
type countingWriter struct {
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
