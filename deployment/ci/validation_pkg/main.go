package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":     true,
	".git":       true,
	"deployment": true,
	"_examples":  true,
	".vscode":    true,
	".idea":      true,
}

// Checks that every library package is named after its folder, that folder names are unique
// across the tree, and that every go:generate mock has its generated file beside it.
func main() {
	folders := make(map[string][]string)
	var problems []string

	filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			if path != "." {
				folders[info.Name()] = append(folders[info.Name()], path)
			}
			return nil
		}

		name := info.Name()
		if filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
			return nil
		}
		src := string(content)

		pkg := extractPackage(src)
		if pkg == "main" {
			return nil
		}

		dir := filepath.Dir(path)
		if folder := filepath.Base(dir); pkg != "" && folder != "." && pkg != folder {
			problems = append(problems, fmt.Sprintf("package %q does not match folder %q in %s", pkg, folder, path))
		}

		if strings.Contains(src, "//go:generate mockgen") && !strings.HasPrefix(name, "mock_") {
			if _, err := os.Stat(filepath.Join(dir, "mock_"+name)); err != nil {
				problems = append(problems, fmt.Sprintf("missing generated mock for %s", path))
			}
		}

		return nil
	})

	for name, paths := range folders {
		if len(paths) > 1 {
			problems = append(problems, fmt.Sprintf("folder %q is duplicated in %s", name, strings.Join(paths, ", ")))
		}
	}

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Println("ERROR:", p)
		}
		os.Exit(1)
	}

	fmt.Println("No problems found.")
}

func extractPackage(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "package ") {
			return strings.TrimPrefix(line, "package ")
		}
	}
	return ""
}
