package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ochairo/lintgate/internal/domain/interfaces/gateways"
)

// Variables rewritten on activation
const (
	envPath       = "PATH"
	envVirtualEnv = "VIRTUAL_ENV"
	envPythonHome = "PYTHONHOME"
)

// environmentActivator activates a virtualenv-style environment for the
// child process only; the gate's own environment is not modified.
type environmentActivator struct {
	baseEnv func() []string
	goos    string
}

// NewEnvironmentActivator creates a new environment activator
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewEnvironmentActivator() *environmentActivator {
	return &environmentActivator{
		baseEnv: os.Environ,
		goos:    runtime.GOOS,
	}
}

// Activate builds the child environment for envDir. An empty envDir
// activates nothing and inherits the current environment.
func (a *environmentActivator) Activate(envDir string) (*gateways.Environment, error) {
	base := a.baseEnv()
	if envDir == "" {
		return &gateways.Environment{Vars: base}, nil
	}

	info, err := os.Stat(envDir)
	if err != nil {
		return nil, fmt.Errorf("environment %s: %w", envDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("environment %s is not a directory", envDir)
	}

	binDir := filepath.Join(envDir, a.binDirName())
	if !isDirectory(binDir) {
		return nil, fmt.Errorf("environment %s has no %s directory", envDir, a.binDirName())
	}

	vars := make([]string, 0, len(base)+2)
	oldPath := ""
	for _, kv := range base {
		key, value, _ := strings.Cut(kv, "=")
		switch {
		case a.sameKey(key, envPath):
			oldPath = value
		case a.sameKey(key, envVirtualEnv), a.sameKey(key, envPythonHome):
		default:
			vars = append(vars, kv)
		}
	}

	newPath := binDir
	if oldPath != "" {
		newPath += string(os.PathListSeparator) + oldPath
	}
	vars = append(vars, envPath+"="+newPath, envVirtualEnv+"="+envDir)

	return &gateways.Environment{
		Dir:  envDir,
		Bin:  binDir,
		Vars: vars,
	}, nil
}

// ResolveTool finds name on the activated PATH. Names containing a path
// separator are taken as paths, relative to root, and only checked for
// being executable.
func (a *environmentActivator) ResolveTool(env *gateways.Environment, root, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("tool name is empty")
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		path := name
		if !filepath.IsAbs(path) && root != "" {
			path = filepath.Join(root, path)
		}
		if resolved, ok := a.executable(path); ok {
			return resolved, nil
		}
		return "", fmt.Errorf("tool %s is not an executable file", name)
	}

	for _, dir := range filepath.SplitList(a.lookup(env.Vars, envPath)) {
		if dir == "" {
			continue
		}
		if path, ok := a.executable(filepath.Join(dir, name)); ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("tool %s not found in environment %s", name, env.Dir)
}

func (a *environmentActivator) binDirName() string {
	if a.goos == "windows" {
		return "Scripts"
	}
	return "bin"
}

// Environment keys are case-insensitive on Windows
func (a *environmentActivator) sameKey(k1, k2 string) bool {
	if a.goos == "windows" {
		return strings.EqualFold(k1, k2)
	}
	return k1 == k2
}

func (a *environmentActivator) lookup(vars []string, key string) string {
	for i := len(vars) - 1; i >= 0; i-- {
		k, v, _ := strings.Cut(vars[i], "=")
		if a.sameKey(k, key) {
			return v
		}
	}
	return ""
}

func (a *environmentActivator) executable(path string) (string, bool) {
	candidates := []string{path}
	if a.goos == "windows" && filepath.Ext(path) == "" {
		candidates = append(candidates, path+".exe", path+".bat", path+".cmd")
	}

	for _, c := range candidates {
		info, err := os.Stat(c)
		if err != nil || info.IsDir() {
			continue
		}
		if a.goos != "windows" && info.Mode().Perm()&0o111 == 0 {
			continue
		}
		abs, err := filepath.Abs(c)
		if err != nil {
			continue
		}
		return abs, true
	}
	return "", false
}

// isDirectory checks if a path is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
