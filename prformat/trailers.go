package prformat

import (
	"fmt"
	"strings"
)

// ExtractTrailers moves trailers to the end of raw and splits them off
func ExtractTrailers(r CommandRunner, c Config, raw string) (Body, error) {
	normalized, err := RunLine(r, c.NormalizeCommand, raw)
	if err != nil {
		return Body{}, fmt.Errorf("normalizing trailers: %w", err)
	}

	trailers, err := RunLine(r, c.ParseCommand, normalized)
	if err != nil {
		return Body{}, fmt.Errorf("parsing trailers: %w", err)
	}
	logger.DebugMsg(fmt.Sprintf("found %d trailer lines", countLines(trailers)))

	prose, err := SplitTrailers(normalized, trailers)
	if err != nil {
		return Body{}, err
	}

	return Body{
		Normalized: normalized,
		Prose:      prose,
		Trailers:   trailers,
	}, nil
}

// SplitTrailers removes the trailer block from the end of normalized
func SplitTrailers(normalized, trailers string) (string, error) {
	if trailers == "" {
		return normalized, nil
	}
	if !strings.HasSuffix(normalized, trailers) {
		return "", fmt.Errorf("%w: %q", ErrTrailersNotSuffix, trailers)
	}
	return strings.TrimSuffix(normalized, trailers), nil
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
