// Package capability answers "does the host build tool support X?" questions.
//
// The integration runs inside many host versions, and the host's extension
// API has grown over time: newer hosts expose a compilation-variant API and a
// "can be declared" flag on dependency buckets, older ones do not. Rather
// than probing on every call site, a Probe performs feature detection once
// per host version and hands out tri-state answers. Callers are expected to
// carry a defined fallback for the Unavailable case.
package capability

import (
	"strconv"
	"strings"
)

// TriState is the result of a capability query. A capability can be present
// and enabled, present and disabled, or simply not exist on this host.
type TriState int

const (
	// Unavailable means the host API for this capability does not exist.
	Unavailable TriState = iota
	// AvailableFalse means the API exists and reports the capability off.
	AvailableFalse
	// AvailableTrue means the API exists and reports the capability on.
	AvailableTrue
)

// Known reports whether the capability could be queried at all.
func (t TriState) Known() bool {
	return t != Unavailable
}

// Enabled reports whether the capability is both queryable and on.
func (t TriState) Enabled() bool {
	return t == AvailableTrue
}

func (t TriState) String() string {
	switch t {
	case AvailableTrue:
		return "available(true)"
	case AvailableFalse:
		return "available(false)"
	default:
		return "unavailable"
	}
}

// Minimum host versions for the gated APIs.
const (
	variantAPIMajor = 7
	variantAPIMinor = 0

	declarableFlagMajor = 8
	declarableFlagMinor = 2
)

// Probe holds capability answers for one host version. All detection happens
// in NewProbe; the accessors are plain reads.
type Probe struct {
	hostVersion    string
	variantAPI     TriState
	declarableFlag TriState
}

// NewProbe performs feature detection for the given host version string
// (e.g. "8.4" or "7.6.1-rc2"). An unparsable or empty version yields
// Unavailable for every capability, which pushes callers onto their
// fallback paths.
func NewProbe(hostVersion string) *Probe {
	p := &Probe{
		hostVersion:    hostVersion,
		variantAPI:     Unavailable,
		declarableFlag: Unavailable,
	}

	major, minor, ok := parseVersion(hostVersion)
	if !ok {
		return p
	}

	p.variantAPI = atLeast(major, minor, variantAPIMajor, variantAPIMinor)
	p.declarableFlag = atLeast(major, minor, declarableFlagMajor, declarableFlagMinor)
	return p
}

// HostVersion returns the version string the probe was built for.
func (p *Probe) HostVersion() string {
	return p.hostVersion
}

// VariantAPI reports whether the host exposes the compilation-variant API.
func (p *Probe) VariantAPI() TriState {
	return p.variantAPI
}

// DeclarableFlag reports whether dependency buckets carry a settable
// "can be declared" flag on this host.
func (p *Probe) DeclarableFlag() TriState {
	return p.declarableFlag
}

func atLeast(major, minor, wantMajor, wantMinor int) TriState {
	if major > wantMajor || (major == wantMajor && minor >= wantMinor) {
		return AvailableTrue
	}
	return AvailableFalse
}

// parseVersion extracts major and minor from a lenient "major.minor[.patch]"
// version string. Trailing qualifiers like "-rc2" are ignored. A missing
// minor component is treated as zero.
func parseVersion(version string) (major, minor int, ok bool) {
	version = strings.TrimSpace(version)
	if version == "" {
		return 0, 0, false
	}
	if i := strings.IndexAny(version, "-+ "); i >= 0 {
		version = version[:i]
	}

	parts := strings.Split(version, ".")
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return major, 0, true
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}
