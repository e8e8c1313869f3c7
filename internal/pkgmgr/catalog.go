package pkgmgr

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"gopkg.in/yaml.v3"

	"github.com/melih-ucgun/preflight/internal/system"
)

//go:embed catalog.yaml
var catalogData []byte

// PreHook is an extra manager-specific step that must run, through the
// same privilege tool, before the main install. Its condition is an
// expression over distro facts so the conditional stays in catalog
// data rather than in the invoker.
type PreHook struct {
	When string   `yaml:"when"`
	Argv []string `yaml:"argv"`
}

// Due evaluates the hook condition against the host identity.
func (h *PreHook) Due(info system.Info) (bool, error) {
	env := map[string]any{
		"distro":  info.Distro,
		"like":    info.Like,
		"version": info.Version,
	}
	program, err := expr.Compile(h.When, expr.Env(env), expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("pre-hook condition %q: %w", h.When, err)
	}
	out, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("pre-hook condition %q: %w", h.When, err)
	}
	return out.(bool), nil
}

// Entry is one catalog row: how to invoke a manager and what to
// install with it.
type Entry struct {
	// Binary is the manager executable, also the name probed on PATH.
	Binary string `yaml:"binary"`

	// Install is the subcommand plus non-interactive flags, a
	// manager-specific constant vocabulary.
	Install []string `yaml:"install"`

	// Env holds extra environment entries for the install child.
	Env []string `yaml:"env"`

	// Packages is the ordered dependency set.
	Packages []string `yaml:"packages"`

	PreHook *PreHook `yaml:"pre_hook"`
}

var catalog map[string]Entry

// The catalog ships inside the binary; a malformed or incomplete one
// is a build defect, so loading failures panic at init.
func init() {
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		panic(fmt.Sprintf("pkgmgr: embedded catalog is invalid: %v", err))
	}
	for _, m := range Supported {
		entry, ok := catalog[m.String()]
		if !ok {
			panic(fmt.Sprintf("pkgmgr: catalog entry missing for %s", m))
		}
		if entry.Binary == "" || len(entry.Install) == 0 || len(entry.Packages) == 0 {
			panic(fmt.Sprintf("pkgmgr: catalog entry for %s is incomplete", m))
		}
	}
}

// Lookup returns the catalog entry for a supported manager. The
// mapping is total over supported variants; asking for Unsupported is
// a programmer error.
func Lookup(m PackageManager) Entry {
	entry, ok := catalog[m.String()]
	if !ok {
		panic(fmt.Sprintf("pkgmgr: no catalog entry for %s", m))
	}
	return entry
}

// SupportedBinaries returns the probe names in priority order, for
// diagnostics.
func SupportedBinaries() string {
	names := make([]string, 0, len(Supported))
	for _, m := range Supported {
		names = append(names, Lookup(m).Binary)
	}
	return strings.Join(names, ", ")
}
