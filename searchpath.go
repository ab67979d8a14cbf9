package nuclidedata

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// WithSystemPaths enables automatic discovery of data directories from
// the NUCLIDE_DATA_PATH environment variable (colon-separated) and a
// small set of conventional locations. Discovered paths are appended
// after any explicit source, serving as fallback. When source is nil
// and WithSystemPaths is set, system paths alone are sufficient.
func WithSystemPaths() LoadOption {
	return func(c *loadConfig) { c.systemPaths = true }
}

// discoverSystemSources returns Sources for all discovered system data
// directories.
func discoverSystemSources(logger *slog.Logger) []Source {
	var sources []Source
	for _, d := range discoverSystemPaths(logger) {
		if src, err := Dir(d); err == nil {
			sources = append(sources, src)
		}
	}
	return sources
}

// discoverSystemPaths returns candidate data directories, deduplicated
// and filtered to directories that exist.
func discoverSystemPaths(logger *slog.Logger) []string {
	var all []string
	if v := os.Getenv("NUCLIDE_DATA_PATH"); v != "" {
		all = append(all, strings.Split(v, string(os.PathListSeparator))...)
	}
	all = append(all, defaultDataPaths()...)
	dirs := filterExistingDirs(dedup(all))

	if logEnabled(logger, slog.LevelDebug) {
		logger.Debug("system data paths", slog.Int("count", len(dirs)))
	}
	return dirs
}

func defaultDataPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".nuclide-data"))
	}
	paths = append(paths,
		"/usr/share/nuclide-data",
		"/usr/local/share/nuclide-data",
	)
	return paths
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var out []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func filterExistingDirs(paths []string) []string {
	var out []string
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			out = append(out, p)
		}
	}
	return out
}
