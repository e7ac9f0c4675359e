// Package cpu reports CPU feature flags relevant to reading the cycle
// counter, for diagnostics.
package cpu

// Features describes the processor as seen through golang.org/x/sys/cpu.
type Features struct {
	Architecture string
	// Flags lists the names of the feature bits that are set.
	Flags []string
}

// Has reports whether the named flag is set.
func (f Features) Has(flag string) bool {
	for _, name := range f.Flags {
		if name == flag {
			return true
		}
	}

	return false
}

// DetectFeatures reports the features of the current processor.
func DetectFeatures() Features {
	return detectFeaturesImpl()
}

type flag struct {
	name string
	set  bool
}

func setFlags(flags []flag) []string {
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		if f.set {
			names = append(names, f.name)
		}
	}

	return names
}
