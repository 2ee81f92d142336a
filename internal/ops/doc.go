// Package ops provides the reference algorithm pairs the tuner ships with,
// together with the registry used to select them. The crossover engine never
// depends on this package; operations reach it as opaque callables.
//
// Each pair binds a low-overhead, asymptotically slower algorithm against a
// high-overhead, asymptotically faster one for the same arithmetic operation
// over big integers.
package ops
