// robometrics analyzes a tree of Robot Framework Python libraries and
// reports keyword complexity, redundancy, and usage patterns as JSON.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/scienceartist/robometrics/internal/analyze"
	"github.com/scienceartist/robometrics/internal/discover"
	"github.com/scienceartist/robometrics/internal/extract"
	"github.com/scienceartist/robometrics/internal/lang"
	"github.com/scienceartist/robometrics/internal/model"
	"github.com/scienceartist/robometrics/internal/report"
)

var version = "dev"

const defaultMaxFileSize = 1_000_000 // 1 MB

// errUsage marks the missing-argument case, which prints its own message.
var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stdout, "Error during analysis: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("robometrics", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		maxFileSize int
		showVersion bool
	)

	fs.IntVar(&maxFileSize, "max-file-size", defaultMaxFileSize, "skip files larger than this many bytes")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "robometrics %s\n", version)
		return nil
	}

	if fs.NArg() < 1 {
		_, _ = fmt.Fprintln(stdout, "Usage: robometrics <directory_with_robot_libraries>")
		return errUsage
	}

	root := fs.Arg(0)

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	// Discover files
	files, err := discover.Files(root)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	// Filter by size
	files = filterBySize(root, files, maxFileSize, stderr)

	query, err := lang.KeywordQuery()
	if err != nil {
		return err
	}

	// Extract keywords concurrently, then merge in file-visit order so
	// discovery order matches a serial walk.
	perFile := extractConcurrent(root, files, query, stderr)

	an := analyze.New()
	for i, kws := range perFile {
		suite := filepath.Base(filepath.Dir(filepath.Join(root, files[i])))
		an.Add(suite, kws)
	}

	if an.TotalTests() == 0 {
		return errors.New("no Robot Framework keywords found in the given directory")
	}

	rep := report.Assemble(an, time.Now())

	data, err := rep.Encode()
	if err != nil {
		return err
	}

	outDir, err := report.WriteFile(root, data)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(stdout, string(data))
	_, _ = fmt.Fprintf(stdout, "\nAnalysis complete. Report saved in: %s\n", outDir)
	return nil
}

func filterBySize(root string, files []string, maxSize int, stderr io.Writer) []string {
	var kept []string
	for _, f := range files {
		fi, err := os.Stat(filepath.Join(root, f))
		if err != nil {
			kept = append(kept, f) // keep if can't stat
			continue
		}
		if fi.Size() > int64(maxSize) {
			_, _ = fmt.Fprintf(stderr, "Warning: %s: skipped (>%d bytes)\n", f, maxSize)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// extractConcurrent runs per-file extraction on a worker pool and returns
// one keyword slice per input file, indexed like files. Extraction is
// side-effect-free per file; all shared state is merged by the caller.
// A file that cannot be read or parsed contributes zero keywords and a
// warning, never a failed run.
func extractConcurrent(root string, files []string, query *sitter.Query, stderr io.Writer) [][]model.Keyword {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([][]model.Keyword, len(files))

	var wg sync.WaitGroup
	var stderrMu sync.Mutex

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each goroutine gets its own parser
			parser := lang.NewParser()

			for idx := range work {
				rel := files[idx]
				path := filepath.Join(root, rel)

				source, err := os.ReadFile(path)
				if err != nil {
					stderrMu.Lock()
					_, _ = fmt.Fprintf(stderr, "Warning: could not process %s: %v\n", rel, err)
					stderrMu.Unlock()
					continue
				}

				kws, err := extract.Keywords(parser, query, source, path)
				if err != nil {
					stderrMu.Lock()
					_, _ = fmt.Fprintf(stderr, "Warning: could not process %s: %v\n", rel, err)
					stderrMu.Unlock()
					continue
				}
				results[idx] = kws
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-max-file-size": true, "--max-file-size": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
