//go:build 386 || amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on x86 systems.
//
// golang.org/x/sys/cpu does not expose the TSC or invariant-TSC CPUID bits;
// RDTSC is assumed present on every x86 CPU Go supports.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
		Flags: setFlags([]flag{
			{"sse2", cpu.X86.HasSSE2},
			{"sse3", cpu.X86.HasSSE3},
			{"ssse3", cpu.X86.HasSSSE3},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"bmi2", cpu.X86.HasBMI2},
			{"rdrand", cpu.X86.HasRDRAND},
		}),
	}
}
