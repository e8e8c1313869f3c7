package cmd

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/melih-ucgun/preflight/internal/core"
	"github.com/melih-ucgun/preflight/internal/pkgmgr"
	"github.com/melih-ucgun/preflight/internal/system"
)

var rootCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Install the native libraries needed to build the editor on this machine.",
	Long: `Preflight detects the host distribution's package manager and installs
the native build dependencies (audio, fonts, windowing, TLS, compression,
GPU, version-control bindings) with a single privileged install command.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		res := run(system.HostEnv{})
		if res.Failed() {
			pterm.Error.Println(res.Message)
			os.Exit(res.ExitCode)
		}
		pterm.Success.Println(res.Message)
	},
}

// run walks the whole pipeline once: privilege resolution, manager
// detection, catalog lookup, install. Every outcome is a single
// terminal Result; there is no fallback manager and no retry.
func run(env system.EnvQuery) core.Result {
	level := core.ParseLogLevel(os.Getenv("PREFLIGHT_LOG_LEVEL"))
	if level == core.LevelDebug {
		pterm.EnableDebugMessages()
	}
	log := core.NewDefaultLogger(os.Stderr, level).With("run_id", uuid.NewString())

	info := system.Detect(env)
	log.Debug("host identity", "distro", info.Distro, "version", info.Version)

	tool := pkgmgr.ResolvePrivilegeTool(env)
	log.Debug("privilege tool resolved", "tool", tool.String())

	mgr := pkgmgr.Detect(env)
	if mgr == pkgmgr.Unsupported {
		// Report without ever touching the privilege tool.
		return core.Unsupported(
			"unsupported distribution: none of " + pkgmgr.SupportedBinaries() + " found on PATH")
	}
	log.Info("package manager detected", "manager", mgr.String())

	inv := &pkgmgr.Invoker{Tool: tool, Log: log}
	return inv.Install(mgr, info)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for PREFLIGHT_* settings; absence is fine.
	_ = godotenv.Load()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	// PTerm output to Stderr (to keep Stdout clean for piping)
	pterm.SetDefaultOutput(os.Stderr)
	pterm.Success.Writer = os.Stderr
	pterm.Info.Writer = os.Stderr
	pterm.Error.Writer = os.Stderr
	pterm.Warning.Writer = os.Stderr
}
