package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// inputExts are the file extensions picked up from a directory.
var inputExts = map[string]bool{
	".csv":  true,
	".xls":  true,
	".xlsx": true,
}

// Inputs expands paths into the files to convert. Files are kept as given;
// directories contribute their export files, skipping earlier output that
// carries suffix before the extension.
func Inputs(paths []string, suffix string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		found, err := scan(p, suffix)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func scan(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !inputExts[ext] {
			continue
		}
		if suffix != "" && strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), suffix) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}
