package processor

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/CodMac/go-code-explorer/model"
)

// DiscoverFiles returns the source files of lang below root, skipping hidden
// directories. root may also be a single file.
func DiscoverFiles(root string, lang model.Language) ([]string, error) {
	ext := lang.FileExtension()

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if filepath.Ext(root) == ext {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

// DiscoverAll runs DiscoverFiles over several locations and removes duplicates.
func DiscoverAll(locations []string, lang model.Language) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, loc := range locations {
		found, err := DiscoverFiles(loc, lang)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}
	return files, nil
}
