package activate

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/skratchdot/open-golang/open"
)

// Launcher starts files picked in the listing
type Launcher interface {
	IsExecutable(path string) bool
	SpawnDetached(path string) error
	OpenDefault(path string) error
}

// SystemLauncher launches through the operating system
type SystemLauncher struct{}

func (SystemLauncher) IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	switch runtime.GOOS {
	case "windows":
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".exe" || ext == ".bat" || ext == ".cmd" || ext == ".com"
	default:
		return info.Mode().Perm()&0111 != 0
	}
}

// SpawnDetached starts path with null standard streams and does not wait for it
func (SystemLauncher) SpawnDetached(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cmd := exec.Command(abs)
	cmd.Dir = filepath.Dir(abs)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// OpenDefault hands path to the desktop's preferred application
func (SystemLauncher) OpenDefault(path string) error {
	return open.Start(path)
}
