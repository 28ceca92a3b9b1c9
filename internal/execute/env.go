// SPDX-License-Identifier: MPL-2.0

package execute

import (
	"os"
	"runtime"
	"strings"
)

// searchPathVar is the name of the executable search-path variable.
const searchPathVar = "PATH"

// PrependSearchPath returns a copy of env with dir prefixed onto the search
// path, joined with the platform's path-list separator. The remaining
// entries keep their original order; env itself is never mutated, so
// repeated resolutions cannot interfere and no process-wide state needs
// restoring afterwards. When env carries no search-path variable at all,
// one is appended containing only dir.
func PrependSearchPath(env []string, dir string) []string {
	out := make([]string, 0, len(env)+1)
	sep := string(os.PathListSeparator)
	found := false

	for _, entry := range env {
		name, value, ok := strings.Cut(entry, "=")
		if ok && !found && isSearchPathVar(name) {
			found = true
			if value == "" {
				out = append(out, name+"="+dir)
			} else {
				out = append(out, name+"="+dir+sep+value)
			}
			continue
		}
		out = append(out, entry)
	}

	if !found {
		out = append(out, searchPathVar+"="+dir)
	}

	return out
}

// isSearchPathVar matches the search-path variable name. Windows environment
// variable names are case-insensitive ("Path" is common there).
func isSearchPathVar(name string) bool {
	if runtime.GOOS == "windows" {
		return strings.EqualFold(name, searchPathVar)
	}
	return name == searchPathVar
}
