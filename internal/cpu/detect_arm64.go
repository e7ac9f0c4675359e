//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
// evtstrm is the generic timer event stream, backed by the same counter
// as CNTVCT_EL0.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
		Flags: setFlags([]flag{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"evtstrm", cpu.ARM64.HasEVTSTRM},
			{"aes", cpu.ARM64.HasAES},
			{"atomics", cpu.ARM64.HasATOMICS},
		}),
	}
}
