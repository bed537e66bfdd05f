package config

import (
	"fmt"
	"strconv"
	"strings"
)

// priorityWidth is the number of leading digits that form the alternatives
// priority. "12.6" becomes 126, so newer toolkits win the automatic mode.
const priorityWidth = 3

// separators are stripped from a version label before the digits are read.
const separators = ".-_"

// DerivePriority converts a version label into an alternatives priority.
// Labels whose stripped form is not at least priorityWidth digits are
// rejected rather than silently padded.
func DerivePriority(version string) (int, error) {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(separators, r) {
			return -1
		}
		return r
	}, version)

	if len(stripped) < priorityWidth {
		return 0, fmt.Errorf("version label %q yields %d digit(s), need at least %d", version, len(stripped), priorityWidth)
	}

	priority, err := strconv.Atoi(stripped[:priorityWidth])
	if err != nil {
		return 0, fmt.Errorf("version label %q is not numeric after removing separators", version)
	}
	return priority, nil
}
