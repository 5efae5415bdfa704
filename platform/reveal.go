package platform

import (
	"fmt"
	"os/exec"
)

// Reveal opens path in the platform's file manager (or default handler for
// files). The viewer is fire-and-forget: the launcher does not track it.
func Reveal(p Platform, path string) error {
	prog, args := p.RevealCommand(path)
	cmd := exec.Command(prog, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
