package system

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// EnvQuery answers questions about the host environment. Detection code
// takes it as an explicit input instead of touching PATH or the
// filesystem directly, so tests can run against a fake host.
type EnvQuery interface {
	// LookPath resolves a binary on PATH without executing it.
	LookPath(bin string) (string, error)

	// ReadFile reads a host file such as /etc/os-release.
	ReadFile(path string) ([]byte, error)
}

// HostEnv is the real host implementation of EnvQuery.
type HostEnv struct{}

func (HostEnv) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (HostEnv) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

const osReleasePath = "/etc/os-release"

// Info holds the distribution identity read from os-release.
type Info struct {
	Distro  string // ID: "ubuntu", "fedora", "arch", ...
	Like    string // ID_LIKE, space separated, may be empty
	Version string // VERSION_ID, may be empty on rolling distros
}

// Detect reads the distribution identity. A missing or unreadable
// os-release yields an empty Info; callers treat unknown identity the
// same as any non-Fedora host.
func Detect(env EnvQuery) Info {
	data, err := env.ReadFile(osReleasePath)
	if err != nil {
		return Info{}
	}
	fields := parseOSRelease(data)
	return Info{
		Distro:  strings.ToLower(fields["ID"]),
		Like:    strings.ToLower(fields["ID_LIKE"]),
		Version: fields["VERSION_ID"],
	}
}

func parseOSRelease(data []byte) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			key := parts[0]
			val := strings.Trim(parts[1], `"'`)
			fields[key] = val
		}
	}
	return fields
}
