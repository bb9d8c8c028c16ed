// Package iowriters writes the four output files spec.md §6 names: the
// network file, community file, degree file, and community-size file.
//
// Grounded on the teacher pack's small, single-purpose writer functions
// with explicit *bufio.Writer flushing (the examples/ driver style the
// teacher used to dump a constructed graph to disk).
package iowriters

import (
	"bufio"
	"fmt"
	"os"
	"sort"

	"github.com/abcdgraph/abcdgen"
)

// WriteNetwork writes one edge per line as "a\tb", 1-indexed, edges
// sorted lexicographically ascending.
func WriteNetwork(path string, edges []abcdgen.Edge) error {
	sorted := append([]abcdgen.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].A != sorted[j].A {
			return sorted[i].A < sorted[j].A
		}
		return sorted[i].B < sorted[j].B
	})

	return writeLines(path, len(sorted), func(w *bufio.Writer, i int) error {
		_, err := fmt.Fprintf(w, "%d\t%d\n", sorted[i].A+1, sorted[i].B+1)
		return err
	})
}

// WriteCommunities writes one vertex per line as "i\tc", in vertex-index
// order, both 1-indexed.
func WriteCommunities(path string, clusters []int32) error {
	return writeLines(path, len(clusters), func(w *bufio.Writer, i int) error {
		_, err := fmt.Fprintf(w, "%d\t%d\n", i+1, clusters[i])
		return err
	})
}

// WriteDegrees writes one degree per line, in vertex-index order.
func WriteDegrees(path string, w []int32) error {
	return writeInts(path, w)
}

// WriteSizes writes one community size per line.
func WriteSizes(path string, s []int32) error {
	return writeInts(path, s)
}

func writeInts(path string, values []int32) error {
	return writeLines(path, len(values), func(w *bufio.Writer, i int) error {
		_, err := fmt.Fprintf(w, "%d\n", values[i])
		return err
	})
}

func writeLines(path string, n int, lineAt func(w *bufio.Writer, i int) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("iowriters: create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < n; i++ {
		if err := lineAt(w, i); err != nil {
			return fmt.Errorf("iowriters: write %s: %w", path, err)
		}
	}
	return w.Flush()
}
