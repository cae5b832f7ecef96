// Command tangobench is the external, timing-only driver described in
// spec §6: it builds a Tree over 0..M-1 and replays a file of query keys
// against it, reporting total and average wall time per query. It is a
// collaborator of the tango package, not part of its core: all tree logic
// lives in package tango, and this command only drives it and reports
// timings, grounded on original_source/console/tree/tester.py's file
// format and diagnostics.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/tangotree/tango/tango"
)

const (
	maxQueries = 100000
	maxRange   = 1000000
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tangobench <query-file>")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Args[1], logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	n, err := readBoundedInt(scanner, "N (query count)", 1, maxQueries)
	if err != nil {
		return err
	}
	m, err := readBoundedInt(scanner, "M (universe size)", 1, maxRange)
	if err != nil {
		return err
	}

	universe := make([]int, m)
	for i := range universe {
		universe[i] = i
	}

	tree, err := tango.Build(universe, func(a, b int) bool { return a < b })
	if err != nil {
		return fmt.Errorf("build universe 0..%d: %w", m-1, err)
	}
	logger.Info("built universe", "size", m)

	var total time.Duration
	mistakes := 0

	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return fmt.Errorf("query %d: unexpected end of file", i)
		}
		line := scanner.Text()
		val, err := strconv.Atoi(line)
		if err != nil {
			logger.Warn("malformed query, skipped", "line", line)
			continue
		}

		start := time.Now()
		got, found := tree.Search(val)
		elapsed := time.Since(start)
		total += elapsed

		inUniverse := val >= 0 && val < m
		switch {
		case inUniverse && found && got == val:
		case !inUniverse && !found:
		default:
			mistakes++
			fmt.Printf("MISTAKE: query=%d returned found=%v value=%v\n", val, found, got)
		}
	}

	avg := time.Duration(0)
	if n > 0 {
		avg = total / time.Duration(n)
	}
	fmt.Printf("Total time: %s\n", total)
	fmt.Printf("Average time per query: %s\n", avg)

	if mistakes > 0 {
		return fmt.Errorf("%d of %d queries returned an unexpected result", mistakes, n)
	}
	return nil
}

func readBoundedInt(scanner *bufio.Scanner, label string, min, max int) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%s: missing from input", label)
	}
	v, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("%s: not an integer: %w", label, err)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s: %d out of bounds [%d, %d]", label, v, min, max)
	}
	return v, nil
}
