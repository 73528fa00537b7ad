package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// mockSource is a file declaring at least one interface. Its mock lives next to it, in the same
// package, as mock_<file>.go.
type mockSource struct {
	Dir  string
	File string
	Pkg  string
}

var skipDirs = map[string]bool{
	"vendor":     true,
	".git":       true,
	"deployment": true,
	"_examples":  true,
	".vscode":    true,
	".idea":      true,
}

func main() {
	workers := flag.Int("workers", 5, "concurrent mockgen processes")
	dryRun := flag.Bool("dry-run", false, "list sources without generating")
	flag.Parse()

	start := time.Now()
	srcCh := make(chan mockSource, 100)

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range srcCh {
				dest := "mock_" + s.File
				if *dryRun {
					fmt.Printf("would generate %s\n", filepath.Join(s.Dir, dest))
					continue
				}

				cmd := exec.Command("go", "run", "go.uber.org/mock/mockgen@latest",
					"-source="+s.File,
					"-destination="+dest,
					"-package="+s.Pkg,
				)
				cmd.Dir = s.Dir
				if out, err := cmd.CombinedOutput(); err != nil {
					fmt.Fprintf(os.Stderr, "mockgen %s: %v\n%s", filepath.Join(s.Dir, s.File), err, out)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				fmt.Printf("generated %s\n", filepath.Join(s.Dir, dest))
			}
		}()
	}

	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if skipDirs[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		name := info.Name()
		if filepath.Ext(name) != ".go" || strings.HasPrefix(name, "mock_") || strings.HasSuffix(name, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
			return nil
		}

		src := string(content)
		if !strings.Contains(src, "//go:generate mockgen") {
			return nil
		}

		pkg := extractPackage(src)
		if pkg == "" || pkg == "main" {
			return nil
		}

		srcCh <- mockSource{Dir: filepath.Dir(path), File: name, Pkg: pkg}
		return nil
	})
	close(srcCh)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(os.Stderr, "walk: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTotal execution time: %s\n", time.Since(start))
	if failed > 0 {
		os.Exit(1)
	}
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
