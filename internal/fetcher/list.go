// SPDX-License-Identifier: MPL-2.0

package fetcher

import "os"

// Entry describes one version directory found under the installations root.
type Entry struct {
	Version Version
	Status  Status
}

// List enumerates the version directories under the installations root with
// their probed status, in directory order. A missing root yields an empty
// list rather than an error: no root simply means nothing is installed yet.
func (r *Resolver) List() ([]Entry, error) {
	root, err := r.Root()
	if err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &ProbeError{Path: root, Err: err}
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		version := Version(de.Name())
		status, err := r.Check(version)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Version: version, Status: status})
	}

	return entries, nil
}
