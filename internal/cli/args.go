package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arran4/diffbench"
)

// ParseRange parses a half-open range written as "start:end".
func ParseRange(s string) (diffbench.Range, error) {
	start, end, ok := strings.Cut(s, ":")
	if !ok {
		return diffbench.Range{}, fmt.Errorf("range %q: expected start:end", s)
	}
	lo, err := strconv.Atoi(start)
	if err != nil {
		return diffbench.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	hi, err := strconv.Atoi(end)
	if err != nil {
		return diffbench.Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	return diffbench.Range{Start: lo, End: hi}, nil
}

// ParseConfig parses one workload tuple written as a comma separated list of
// key=value pairs, for example:
//
//	count=10000,delete=0:1000,insert=0:1000,shuffle=0:100
//
// Unknown keys are rejected. Omitted ranges default to empty.
func ParseConfig(s string, seed uint64) (diffbench.Config, error) {
	cfg := diffbench.Config{Seed: seed}
	for _, field := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return diffbench.Config{}, fmt.Errorf("workload %q: expected key=value, got %q", s, field)
		}
		switch key {
		case "count":
			n, err := strconv.Atoi(value)
			if err != nil {
				return diffbench.Config{}, fmt.Errorf("workload %q: count: %w", s, err)
			}
			cfg.Count = n
		case "delete":
			r, err := ParseRange(value)
			if err != nil {
				return diffbench.Config{}, fmt.Errorf("workload %q: delete: %w", s, err)
			}
			cfg.Delete = r
		case "insert":
			r, err := ParseRange(value)
			if err != nil {
				return diffbench.Config{}, fmt.Errorf("workload %q: insert: %w", s, err)
			}
			cfg.Insert = r
		case "shuffle":
			r, err := ParseRange(value)
			if err != nil {
				return diffbench.Config{}, fmt.Errorf("workload %q: shuffle: %w", s, err)
			}
			cfg.Shuffle = r
		default:
			return diffbench.Config{}, fmt.Errorf("workload %q: unknown key %q", s, key)
		}
	}
	return cfg, nil
}
