//go:build !amd64 && !386 && (!arm64 || purego)

package cycles

// This target has no cycle counter this package knows how to read: either
// the architecture lacks one, or it is arm64 built with purego, where the
// only assembly-free source is the runtime clock. Failing here keeps the
// problem at build time.
var _ = cycle_counter_requires_amd64_386_or_arm64_without_purego
