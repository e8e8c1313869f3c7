package pkgmgr

import (
	"github.com/melih-ucgun/preflight/internal/system"
)

// PackageManager identifies the host's native package manager. Exactly
// one value is selected per run; Unsupported means no known manager
// binary was found on PATH.
type PackageManager int

const (
	Unsupported PackageManager = iota
	Apt
	Dnf
	Zypper
	Pacman
	Xbps
)

func (m PackageManager) String() string {
	switch m {
	case Apt:
		return "apt"
	case Dnf:
		return "dnf"
	case Zypper:
		return "zypper"
	case Pacman:
		return "pacman"
	case Xbps:
		return "xbps"
	default:
		return "unsupported"
	}
}

// Supported lists the detectable managers in probe priority order.
// On hosts carrying several manager binaries (compatibility layers,
// containers with leftover tooling) the first match wins; the
// tie-break is intentional and fixed.
var Supported = []PackageManager{Apt, Dnf, Zypper, Pacman, Xbps}

// Detect probes PATH for each supported manager binary in priority
// order and returns the first one found. The probe only resolves the
// binary, it never executes it, so detection is repeatable for a given
// PATH and filesystem state.
func Detect(env system.EnvQuery) PackageManager {
	for _, m := range Supported {
		if _, err := env.LookPath(Lookup(m).Binary); err == nil {
			return m
		}
	}
	return Unsupported
}
