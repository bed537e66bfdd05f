package commands

import (
	"fmt"

	"cudactl/internal/alternatives"
	"cudactl/internal/envsetup"
)

// RunEnv prints the shell environment setup for the primary link. The link
// is emitted as-is; a dangling link leaves the prepended paths inert, so
// this never fails.
func RunEnv(shell string) {
	for _, line := range envsetup.Lines(alternatives.Primary.Link, shell) {
		fmt.Println(line)
	}
}
