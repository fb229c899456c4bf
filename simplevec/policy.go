package simplevec

import "runtime"

const (
	// DefaultUnseqThreshold is the smallest input length for which the
	// Auto mode uses the unsequenced (lane unrolled) strategy.
	DefaultUnseqThreshold = 32

	// DefaultParallelThreshold is the smallest input length for which the
	// Auto mode spreads work across Goroutines.
	DefaultParallelThreshold = 1 << 16

	// DefaultGrain is the default number of elements handled by one
	// Goroutine task in the parallel strategy.
	DefaultGrain = 1 << 13
)

// maxLanes bounds the number of independent accumulators used by the
// unsequenced reduction.
const maxLanes = 8

// laneWidth is the number of elements processed per unrolled step.
// It is tuned by the architecture specific init functions.
var laneWidth = 4

// ExecutionMode selects how an algorithm visits its input.
type ExecutionMode int

const (
	// Auto picks a strategy based on the length of the input.
	Auto ExecutionMode = iota

	// Sequential visits elements one at a time, in index order.
	// This is the reference strategy which every other strategy must agree
	// with (up to reassociation of reductions).
	Sequential

	// Unsequenced processes elements in unrolled groups with independent
	// accumulators, which allows the compiler and CPU to overlap work.
	Unsequenced

	// Parallel splits the input across multiple Goroutines.
	Parallel
)

func (e ExecutionMode) String() string {
	switch e {
	case Auto:
		return "auto"
	case Sequential:
		return "sequential"
	case Unsequenced:
		return "unsequenced"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// A Policy configures the transform and reduce algorithms.
//
// The zero value is valid and uses Auto mode with default thresholds.
type Policy struct {
	Mode ExecutionMode

	// UnseqThreshold is the minimum length for Unsequenced in Auto mode.
	// If zero, DefaultUnseqThreshold is used.
	UnseqThreshold int

	// ParallelThreshold is the minimum length for Parallel in Auto mode.
	// If zero, DefaultParallelThreshold is used.
	ParallelThreshold int

	// Grain is the number of elements per parallel task.
	// If zero, DefaultGrain is used.
	Grain int

	// Workers is the maximum number of Goroutines for Parallel mode.
	// If zero, GOMAXPROCS is used.
	Workers int
}

var (
	// DefaultPolicy is used by the vector type and the Unseq helpers.
	DefaultPolicy = Policy{}

	// SequentialPolicy always uses the Sequential mode.
	SequentialPolicy = Policy{Mode: Sequential}

	// UnsequencedPolicy always uses the Unsequenced mode.
	UnsequencedPolicy = Policy{Mode: Unsequenced}

	// ParallelPolicy always uses the Parallel mode with default settings.
	ParallelPolicy = Policy{Mode: Parallel}
)

// Resolve returns the concrete mode used for an input of length n.
// The result is never Auto.
func (p Policy) Resolve(n int) ExecutionMode {
	switch p.Mode {
	case Sequential, Unsequenced, Parallel:
		return p.Mode
	}
	if n >= p.parallelThreshold() {
		return Parallel
	} else if n >= p.unseqThreshold() {
		return Unsequenced
	}
	return Sequential
}

func (p Policy) unseqThreshold() int {
	if p.UnseqThreshold == 0 {
		return DefaultUnseqThreshold
	}
	return p.UnseqThreshold
}

func (p Policy) parallelThreshold() int {
	if p.ParallelThreshold == 0 {
		return DefaultParallelThreshold
	}
	return p.ParallelThreshold
}

func (p Policy) grain() int {
	if p.Grain <= 0 {
		return DefaultGrain
	}
	return p.Grain
}

func (p Policy) workers() int {
	if p.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Workers
}

// LaneWidth returns the unroll factor used by the Unsequenced mode on this
// machine.
func LaneWidth() int {
	return laneWidth
}
