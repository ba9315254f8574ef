// Package fsop provides small file system helpers.
package fsop

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/yeisme/linelens/pkg/utils/gitignore"
)

// FormatSize renders a byte count as a human readable string,
// dividing by 1024 through B/KB/MB/GB and falling through to TB.
func FormatSize(size int64) string {
	v := float64(size)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f TB", v)
}

// walkSubdirectories 是内部通用实现，支持 ignorePatterns（可为 nil）
func walkSubdirectories(root string, ignorePatterns []string) ([]string, error) {
	var subdirs []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			rel, _ := filepath.Rel(root, path)
			rel = filepath.ToSlash(rel)
			if rel == ".git" || strings.HasSuffix(rel, "/.git") {
				return filepath.SkipDir
			}
			for _, pat := range ignorePatterns {
				if pat == "" {
					continue
				}
				if strings.HasPrefix(rel, pat) || strings.HasSuffix(rel, pat) || strings.Contains(rel, pat) {
					return filepath.SkipDir
				}
			}
			subdirs = append(subdirs, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return subdirs, nil
}

// ListAllSubdirectories lists all subdirectories in the given path, recursively.
// It does not include the root path itself in the returned list.
func ListAllSubdirectories(root string) ([]string, error) {
	return walkSubdirectories(root, nil)
}

// ListSubdirectoriesFiltered lists all subdirectories, skipping those matching ignorePatterns.
func ListSubdirectoriesFiltered(root string, ignorePatterns []string) ([]string, error) {
	return walkSubdirectories(root, ignorePatterns)
}

// ListSubdirectoriesWithGitIgnore lists all subdirectories, respecting .gitignore rules
// loaded from the root directory.
func ListSubdirectoriesWithGitIgnore(root string) ([]string, error) {
	gi, err := gitignore.LoadFromDir(root)
	if err != nil {
		return ListAllSubdirectories(root)
	}

	var subdirs []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if rel == ".git" || strings.HasSuffix(rel, "/.git") || gi.Match(rel, true) {
				return filepath.SkipDir
			}
			subdirs = append(subdirs, path)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return subdirs, nil
}
