package diffbench

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Range is a half-open [Start, End) span of integer indexes.
type Range struct {
	Start int
	End   int
}

// Len returns the number of indexes covered by the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Config describes one workload to generate.
//
// Delete indexes into the source. Insert describes a splice: Start is the
// insertion point in the post-deletion target and Len is the number of fresh
// elements spliced in. Shuffle indexes into the post-insertion target.
type Config struct {
	Count   int
	Delete  Range
	Insert  Range
	Shuffle Range
	Seed    uint64
}

func (c Config) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count %d: %w", c.Count, ErrNegativeCount)
	}
	if c.Delete.Start < 0 || c.Delete.End < c.Delete.Start || c.Delete.End > c.Count {
		return fmt.Errorf("delete range %s with %d elements: %w", c.Delete, c.Count, ErrInvalidRange)
	}
	if c.Insert.Start < 0 || c.Insert.End < c.Insert.Start {
		return fmt.Errorf("insert range %s: %w", c.Insert, ErrInvalidRange)
	}
	afterDelete := c.Count - c.Delete.Len()
	if c.Insert.Start > afterDelete {
		return fmt.Errorf("insert position %d past post-deletion length %d: %w", c.Insert.Start, afterDelete, ErrInvalidRange)
	}
	afterInsert := afterDelete + c.Insert.Len()
	if c.Shuffle.Start < 0 || c.Shuffle.End < c.Shuffle.Start || c.Shuffle.End > afterInsert {
		return fmt.Errorf("shuffle range %s with %d elements: %w", c.Shuffle, afterInsert, ErrInvalidRange)
	}
	return nil
}

// Workload is a generated before/after pair of ordered element collections.
// Both slices are read-only once generated; the Runner shares one Workload
// between concurrently executing units.
type Workload struct {
	Source  []string
	Target  []string
	Delete  Range
	Insert  Range
	Shuffle Range
}

// Generate builds a reproducible workload: Count distinct element tokens as
// the source, then a target derived by removing the Delete sub-range,
// splicing Insert.Len() fresh tokens in at Insert.Start, and permuting the
// Shuffle sub-range in place. The same Config always yields the same
// workload.
func Generate(cfg Config) (Workload, error) {
	if err := cfg.validate(); err != nil {
		return Workload{}, err
	}
	w := Workload{
		Delete:  cfg.Delete,
		Insert:  cfg.Insert,
		Shuffle: cfg.Shuffle,
	}
	if cfg.Count == 0 {
		w.Source = []string{}
		w.Target = []string{}
		return w, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	source, err := tokens(rng, cfg.Count)
	if err != nil {
		return Workload{}, fmt.Errorf("generating source elements: %w", err)
	}
	fresh, err := tokens(rng, cfg.Insert.Len())
	if err != nil {
		return Workload{}, fmt.Errorf("generating inserted elements: %w", err)
	}

	target := make([]string, 0, cfg.Count-cfg.Delete.Len()+cfg.Insert.Len())
	target = append(target, source[:cfg.Delete.Start]...)
	target = append(target, source[cfg.Delete.End:]...)

	spliced := make([]string, 0, len(target)+len(fresh))
	spliced = append(spliced, target[:cfg.Insert.Start]...)
	spliced = append(spliced, fresh...)
	spliced = append(spliced, target[cfg.Insert.Start:]...)

	window := spliced[cfg.Shuffle.Start:cfg.Shuffle.End]
	rng.Shuffle(len(window), func(i, j int) {
		window[i], window[j] = window[j], window[i]
	})

	w.Source = source
	w.Target = spliced
	return w, nil
}

// tokens draws n distinct opaque tokens from the seeded stream.
func tokens(rng *rand.Rand, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, err
		}
		out[i] = id.String()
	}
	return out, nil
}
