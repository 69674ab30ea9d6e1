package domain

import (
	"maps"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ConfigureFingerprint hashes every input that influences the generator
// step. Two invocations with equal fingerprints against an already
// configured build directory may skip the configure stage.
func ConfigureFingerprint(p *Project, c *BuildConfig, tc *Toolchain) string {
	h := xxhash.New()
	write := func(s string) {
		_, _ = h.WriteString(s)
		// NUL-separate fields so adjacent values cannot collide.
		_, _ = h.Write([]byte{0})
	}

	write(p.SourceDir)
	write(string(c.BuildType))
	write(c.Prefix)
	write(p.PolicyFloor)
	for _, arch := range ResolveArchitectures(p, c, tc) {
		write(arch)
	}
	for _, k := range slices.Sorted(maps.Keys(p.Defines)) {
		write(k)
		write(p.Defines[k])
	}
	if tc != nil {
		write(tc.Generator.Version)
		write(tc.Compiler.Version)
	}

	return strconv.FormatUint(h.Sum64(), 16)
}
