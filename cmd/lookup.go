package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gtriggiano/geoip-lookup/pkg/geoip"
	"github.com/gtriggiano/geoip-lookup/pkg/ipv4"
	"github.com/gtriggiano/geoip-lookup/pkg/legacydb"
	"github.com/gtriggiano/geoip-lookup/pkg/report"
)

// bulkOptions controls a file driven lookup.
type bulkOptions struct {
	// path of the address list, "-" for stdin.
	path    string
	workers int
	csv     bool
}

// inputLine is a non blank line of an address list.
type inputLine struct {
	number int
	text   string
}

// lookupSingle prints the report of one address. Invalid addresses and
// corrupt databases abort; uncovered addresses print Unknown fields.
func lookupSingle(w io.Writer, resolver *geoip.Resolver, text string, colored bool) error {
	rec, err := resolver.Lookup(text)
	if err != nil && !errors.Is(err, legacydb.ErrLookupMiss) {
		return err
	}
	return report.WriteSingle(w, rec, colored)
}

// lookupBulk resolves every address of the input file and prints them in file
// order. Invalid lines are skipped with a warning.
func lookupBulk(ctx context.Context, w io.Writer, resolver *geoip.Resolver, logger *zap.Logger, opts bulkOptions) error {
	lines, err := readAddresses(opts.path)
	if err != nil {
		return err
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.text
	}

	results := resolver.LookupAll(ctx, texts, opts.workers)
	records := make([]geoip.Record, 0, len(results))
	for i, res := range results {
		switch {
		case res.Err == nil, errors.Is(res.Err, legacydb.ErrLookupMiss):
			records = append(records, res.Record)
		case errors.Is(res.Err, ipv4.ErrInvalidAddress):
			logger.Warn("skipping invalid address",
				zap.String("file", opts.path),
				zap.Int("line", lines[i].number),
				zap.String("input", res.Input),
			)
		default:
			return fmt.Errorf("line %d: %w", lines[i].number, res.Err)
		}
	}

	logger.Debug("bulk lookup completed",
		zap.Int("lines", len(lines)),
		zap.Int("resolved", len(records)),
		zap.Int("workers", opts.workers),
	)

	if opts.csv {
		return report.WriteCSV(w, records)
	}
	return report.WriteTable(w, records)
}

// readAddresses returns the trimmed non blank lines of path.
func readAddresses(path string) ([]inputLine, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open the address list: %w", err)
		}
		defer f.Close()
		r = f
	}
	return scanAddresses(r)
}

func scanAddresses(r io.Reader) ([]inputLine, error) {
	var lines []inputLine
	scanner := bufio.NewScanner(r)
	for number := 1; scanner.Scan(); number++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		lines = append(lines, inputLine{number: number, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read the address list: %w", err)
	}
	return lines, nil
}
