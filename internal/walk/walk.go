// Package walk discovers the files a zenfmt invocation should process,
// honoring .gitignore rules and explicit include/exclude globs the way
// _examples/original_source/core/file_finder.rs's ignore-crate-backed
// find_files does.
package walk

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	gitignore "github.com/sabhiram/go-gitignore"
)

// Options configures a file walk.
type Options struct {
	Roots            []string
	Include          []string // glob patterns; empty means "everything"
	Exclude          []string // glob patterns, applied after Include
	RespectGitignore bool
	HiddenFiles      bool // include dotfiles and dot-directories
}

// Find walks Options.Roots and returns every regular file that is not
// excluded by .gitignore (when enabled), a hidden-file rule, or an
// explicit Exclude pattern, and that matches Include when it is
// non-empty.
func Find(opts Options) ([]string, error) {
	var out []string
	ignoreCache := map[string]*gitignore.GitIgnore{}

	for _, root := range opts.Roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if !info.IsDir() {
			out = append(out, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			base := filepath.Base(path)
			if d.IsDir() {
				if path != root && !opts.HiddenFiles && isHidden(base) {
					return filepath.SkipDir
				}
				if path != root && opts.RespectGitignore && dirIgnored(path, ignoreCache) {
					return filepath.SkipDir
				}
				return nil
			}
			if !opts.HiddenFiles && isHidden(base) {
				return nil
			}
			if opts.RespectGitignore && fileIgnored(path, ignoreCache) {
				return nil
			}
			if len(opts.Include) > 0 && !matchAny(opts.Include, base) {
				return nil
			}
			if matchAny(opts.Exclude, base) {
				return nil
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, errors.Trace(err)
		}
	}
	return out, nil
}

func isHidden(base string) bool {
	return len(base) > 1 && base[0] == '.'
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func dirIgnored(dir string, cache map[string]*gitignore.GitIgnore) bool {
	return matchesGitignore(dir, cache)
}

func fileIgnored(path string, cache map[string]*gitignore.GitIgnore) bool {
	return matchesGitignore(path, cache)
}

func matchesGitignore(path string, cache map[string]*gitignore.GitIgnore) bool {
	dir := filepath.Dir(path)
	for {
		gi, ok := cache[dir]
		if !ok {
			gi = loadGitignore(filepath.Join(dir, ".gitignore"))
			cache[dir] = gi
		}
		if gi != nil {
			rel, err := filepath.Rel(dir, path)
			if err == nil && gi.MatchesPath(rel) {
				return true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return false
}

func loadGitignore(path string) *gitignore.GitIgnore {
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
