//go:build unix

package activate

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so a hangup of fap's terminal does not reach it
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
