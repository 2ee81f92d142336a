// Package tuner implements the crossover-search engine: a noise-resistant
// timing comparator combined with an exponential-bracketing plus
// binary-refinement search that locates the input bit sizes at which a
// high-overhead, asymptotically faster algorithm starts to beat a
// low-overhead, asymptotically slower one.
//
// The engine knows nothing about the algorithms it measures. Operations enter
// as opaque callables with a declared argument shape, and the engine drives
// them with matched pseudo-random operands drawn from explicitly seeded
// streams, so both sides of every comparison see bitwise-identical inputs.
//
// Everything here is single-threaded on purpose: overlapping work would
// corrupt the wall-clock measurements the whole design depends on.
package tuner
