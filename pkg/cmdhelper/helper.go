package cmdhelper

import (
	"bufio"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/wuxler/imgref/pkg/errdefs"
)

// ReadLines returns the non-blank lines of r with surrounding spaces
// trimmed. Lines starting with "#" are comments and skipped.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	lines = lo.Map(lines, func(line string, _ int) string { return strings.TrimSpace(line) })
	return lo.Filter(lines, func(line string, _ int) bool {
		return line != "" && !strings.HasPrefix(line, "#")
	}), nil
}

// ReadLinesFromFile opens path on fs and calls ReadLines. The path "-"
// reads from stdin.
func ReadLinesFromFile(fs afero.Fs, path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return ReadLines(stdin)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, errdefs.NewE(errdefs.ErrNotFound, err)
	}
	defer f.Close() //nolint:errcheck // read only
	return ReadLines(f)
}
