package binning_test

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/extent"
)

// box is a terse fixture constructor: box(a0, b0, a1, b1, ...).
func box(bounds ...float64) extent.Box {
	b := make(extent.Box, 0, len(bounds)/2)
	for i := 0; i+1 < len(bounds); i += 2 {
		b = append(b, extent.Extent{Min: bounds[i], Max: bounds[i+1]})
	}

	return b
}

// kdPartition recursively splits root at random positions on random axes,
// producing an irregular, gap-free, non-grid partition of 2^depth boxes.
func kdPartition(rng *rand.Rand, root extent.Box, depth int) []extent.Box {
	if depth == 0 {
		return []extent.Box{root}
	}
	axis := rng.Intn(len(root))
	e := root[axis]
	cut := e.Min + (0.2+0.6*rng.Float64())*e.Width()
	lo, hi := root.Clone(), root.Clone()
	lo[axis].Max = cut
	hi[axis].Min = cut

	return append(kdPartition(rng, lo, depth-1), kdPartition(rng, hi, depth-1)...)
}

// shuffledPartition returns a kd partition of the unit cube in random order.
func shuffledPartition(seed int64, dims, depth int) []extent.Box {
	rng := rand.New(rand.NewSource(seed))
	root := make(extent.Box, dims)
	for i := range root {
		root[i] = extent.Extent{Min: 0, Max: 1}
	}
	boxes := kdPartition(rng, root, depth)
	rng.Shuffle(len(boxes), func(i, j int) { boxes[i], boxes[j] = boxes[j], boxes[i] })

	return boxes
}

// bruteForce is the reference classifier: linear scan over boxes.
func bruteForce(boxes []extent.Box, point []float64) binning.Index {
	for i, b := range boxes {
		if b.Contains(point) {
			return i
		}
	}

	return binning.NPos
}

// randomPoints draws n points uniformly from [lo, hi)^dims.
func randomPoints(seed int64, n, dims int, lo, hi float64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		p := make([]float64, dims)
		for a := range p {
			p[a] = lo + (hi-lo)*rng.Float64()
		}
		pts[i] = p
	}

	return pts
}

// malformedReport is one call observed by recordingReporter.
type malformedReport struct {
	kind  binning.Kind
	point []float64
	err   error
}

// recordingReporter collects ReportMalformed calls; safe for concurrent use.
type recordingReporter struct {
	mu      sync.Mutex
	reports []malformedReport
}

func (r *recordingReporter) ReportMalformed(kind binning.Kind, point []float64, err error) {
	cp := append([]float64(nil), point...)
	r.mu.Lock()
	r.reports = append(r.reports, malformedReport{kind: kind, point: cp, err: err})
	r.mu.Unlock()
}

func (r *recordingReporter) snapshot() []malformedReport {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]malformedReport(nil), r.reports...)
}
