package pkgmgr

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/melih-ucgun/preflight/internal/core"
	"github.com/melih-ucgun/preflight/internal/system"
)

// Invoker builds and executes the manager install invocation. It is
// the only place that spawns the package manager; everything before it
// is pure detection and lookup.
type Invoker struct {
	Tool PrivilegeTool
	Log  core.Logger
}

// Install runs the dependency install for mgr: the pre-hook first when
// its condition holds, then the main install, both through the
// resolved privilege tool. The returned Result is terminal; child exit
// codes propagate unmodified and nothing is retried.
func (inv *Invoker) Install(mgr PackageManager, info system.Info) core.Result {
	if mgr == Unsupported {
		return core.Unsupported(fmt.Sprintf(
			"unsupported distribution: none of %s found on PATH", SupportedBinaries()))
	}

	entry := Lookup(mgr)

	if entry.PreHook != nil {
		due, err := entry.PreHook.Due(info)
		if err != nil {
			return core.Failure(err, 1, "pre-install hook condition failed to evaluate")
		}
		if due {
			inv.Log.Info("running pre-install step", "argv", strings.Join(entry.PreHook.Argv, " "))
			if err := inv.run(entry.PreHook.Argv, nil); err != nil {
				return core.Failure(err, core.ExitCode(err), "pre-install step failed")
			}
		}
	}

	argv := make([]string, 0, 1+len(entry.Install)+len(entry.Packages))
	argv = append(argv, entry.Binary)
	argv = append(argv, entry.Install...)
	argv = append(argv, entry.Packages...)

	inv.Log.Info("installing native dependencies",
		"manager", mgr.String(), "packages", len(entry.Packages))
	if err := inv.run(argv, entry.Env); err != nil {
		return core.Failure(err, core.ExitCode(err),
			fmt.Sprintf("%s install failed", entry.Binary))
	}

	return core.Success(fmt.Sprintf(
		"installed %d packages via %s", len(entry.Packages), entry.Binary))
}

// run executes argv behind the privilege prefix, streaming the child's
// output to our own streams so the manager's diagnostics reach the
// user unmodified.
func (inv *Invoker) run(argv []string, extraEnv []string) error {
	full := append(inv.Tool.Prefix(), argv...)
	cmd := exec.Command(full[0], full[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	inv.Log.Debug("exec", "cmd", strings.Join(full, " "))
	return core.CommandRunner.Run(cmd)
}
