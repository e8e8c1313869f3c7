package pkgmgr

import (
	"github.com/melih-ucgun/preflight/internal/system"
)

// PrivilegeTool is the resolved privilege escalation helper. The zero
// value runs commands without a prefix, which is valid for root shells
// and containers.
type PrivilegeTool struct {
	name string
}

// Prefix returns the argv prefix for privileged invocations, nil when
// no helper is needed.
func (t PrivilegeTool) Prefix() []string {
	if t.name == "" {
		return nil
	}
	return []string{t.name}
}

func (t PrivilegeTool) String() string {
	if t.name == "" {
		return "none"
	}
	return t.name
}

// ResolvePrivilegeTool probes for sudo then doas on PATH and returns
// the first one found. Absence of both is not an error.
func ResolvePrivilegeTool(env system.EnvQuery) PrivilegeTool {
	for _, name := range []string{"sudo", "doas"} {
		if _, err := env.LookPath(name); err == nil {
			return PrivilegeTool{name: name}
		}
	}
	return PrivilegeTool{}
}
