// Package envsetup renders the shell lines that put the active toolkit's
// binaries and libraries on the search paths. The lines reference the
// alternatives link, so the OS resolves the real install at access time and
// a later switch needs no re-export.
package envsetup

import (
	"fmt"
	"path/filepath"
)

const (
	binDir = "bin"
	libDir = "lib64"
)

// Lines returns the environment setup for the given shell flavor. Unknown
// shells fall back to POSIX syntax. The lines are valid even when the link
// currently resolves nowhere; the prepended paths are simply inert.
func Lines(link, shell string) []string {
	bin := filepath.Join(link, binDir)
	lib := filepath.Join(link, libDir)

	switch shell {
	case "fish":
		return []string{
			fmt.Sprintf("fish_add_path --prepend --path %s", bin),
			fmt.Sprintf("set -gx LD_LIBRARY_PATH %s $LD_LIBRARY_PATH", lib),
		}
	default: // bash, zsh, plain sh
		return []string{
			fmt.Sprintf(`export PATH="%s:$PATH"`, bin),
			fmt.Sprintf(`export LD_LIBRARY_PATH="%s:$LD_LIBRARY_PATH"`, lib),
		}
	}
}
