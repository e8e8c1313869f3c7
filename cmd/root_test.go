package cmd

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/melih-ucgun/preflight/internal/core"
)

type fakeEnv struct {
	bins  map[string]bool
	files map[string]string
}

func (f *fakeEnv) LookPath(bin string) (string, error) {
	if f.bins[bin] {
		return "/usr/bin/" + bin, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeEnv) ReadFile(path string) ([]byte, error) {
	if data, ok := f.files[path]; ok {
		return []byte(data), nil
	}
	return nil, errors.New("no such file")
}

type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(cmd *exec.Cmd) error {
	r.calls = append(r.calls, cmd.Args)
	return nil
}

func (r *recordingRunner) CombinedOutput(cmd *exec.Cmd) ([]byte, error) {
	return nil, r.Run(cmd)
}

func swapRunner(t *testing.T, r core.Runner) {
	t.Helper()
	old := core.CommandRunner
	core.CommandRunner = r
	t.Cleanup(func() { core.CommandRunner = old })
}

func TestRunUnsupportedPlatform(t *testing.T) {
	rec := &recordingRunner{}
	swapRunner(t, rec)

	res := run(&fakeEnv{bins: map[string]bool{"sudo": true}})

	if !res.Failed() {
		t.Fatal("expected failure on a host without any package manager")
	}
	if res.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", res.ExitCode)
	}
	if len(rec.calls) != 0 {
		t.Errorf("neither privilege tool nor manager may be invoked, got %d calls", len(rec.calls))
	}
}

func TestRunEndToEndApt(t *testing.T) {
	rec := &recordingRunner{}
	swapRunner(t, rec)

	env := &fakeEnv{
		bins: map[string]bool{"sudo": true, "apt-get": true},
		files: map[string]string{
			"/etc/os-release": "ID=ubuntu\nID_LIKE=debian\nVERSION_ID=\"24.04\"\n",
		},
	}
	res := run(env)

	if res.Failed() {
		t.Fatalf("run failed: %v", res.Error)
	}
	if len(rec.calls) != 1 {
		t.Fatalf("expected one install invocation, got %d", len(rec.calls))
	}
	got := rec.calls[0]
	if got[0] != "sudo" || got[1] != "apt-get" || got[2] != "install" || got[3] != "-y" {
		t.Errorf("unexpected argv prefix: %v", got[:4])
	}
}

func TestRunEndToEndXbpsWithDoas(t *testing.T) {
	rec := &recordingRunner{}
	swapRunner(t, rec)

	env := &fakeEnv{
		bins: map[string]bool{"doas": true, "xbps-install": true},
		files: map[string]string{
			"/etc/os-release": "ID=void\n",
		},
	}
	res := run(env)

	if res.Failed() {
		t.Fatalf("run failed: %v", res.Error)
	}
	got := rec.calls[0]
	if got[0] != "doas" || got[1] != "xbps-install" || got[2] != "-Syu" {
		t.Errorf("unexpected argv prefix: %v", got[:3])
	}
}
