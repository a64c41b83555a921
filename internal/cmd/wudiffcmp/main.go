// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// wudiffcmp cross-checks wudiff's edit scripts against
// github.com/sergi/go-diff/diffmatchpatch on a corpus of txtar fixtures, each containing an "old"
// and a "new" file, and reports any case where the two libraries disagree on the number of lines
// changed. It exists to give the O(NP) search a second, independently implemented opinion without
// pulling in a full test corpus.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cloudeng.io/logging"
	"github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/tools/txtar"

	"znkr.io/wudiff"
)

type config struct {
	glob string
	json bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.glob, "glob", "testdata/*.txtar", "glob of txtar fixtures to compare")
	flag.BoolVar(&cfg.json, "json", false, "emit one JSON record per fixture instead of text")
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// record is one comparison result, emitted as JSON when -json is set.
type record struct {
	Fixture     string `json:"fixture"`
	WudiffChurn int    `json:"wudiff_churn"`
	DMPChurn    int    `json:"dmp_churn"`
	Agree       bool   `json:"agree"`
	WudiffErr   string `json:"wudiff_error,omitempty"`
}

func run(cfg config) error {
	paths, err := filepath.Glob(cfg.glob)
	if err != nil {
		return fmt.Errorf("globbing %s: %w", cfg.glob, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no fixtures matched %s", cfg.glob)
	}

	var formatter *logging.JSONFormatter
	var logger *slog.Logger
	if cfg.json {
		formatter = logging.NewJSONFormatter(os.Stdout, "", "  ")
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	disagreements := 0
	for _, path := range paths {
		rec, err := compare(path)
		if err != nil {
			if logger != nil {
				logger.Error("comparison failed", "fixture", path, "err", err)
			}
			continue
		}
		if !rec.Agree {
			disagreements++
		}
		if formatter != nil {
			if err := formatter.Format(rec); err != nil {
				return fmt.Errorf("formatting result for %s: %w", path, err)
			}
			continue
		}
		status := "agree"
		if !rec.Agree {
			status = "DISAGREE"
		}
		fmt.Printf("%-40s wudiff=%-4d dmp=%-4d %s\n", rec.Fixture, rec.WudiffChurn, rec.DMPChurn, status)
	}

	if disagreements > 0 {
		return fmt.Errorf("%d of %d fixtures disagree on churn", disagreements, len(paths))
	}
	return nil
}

// compare loads a txtar fixture with "old" and "new" files and diffs them with both libraries,
// reporting the number of changed lines (churn) each one reports.
func compare(path string) (record, error) {
	ar, err := txtar.ParseFile(path)
	if err != nil {
		return record{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	var old, new []byte
	for _, f := range ar.Files {
		switch f.Name {
		case "old":
			old = f.Data
		case "new":
			new = f.Data
		}
	}

	rec := record{Fixture: path}

	oldLines := strings.SplitAfter(string(old), "\n")
	newLines := strings.SplitAfter(string(new), "\n")
	results, err := wudiff.Diff(oldLines, newLines)
	if err != nil {
		rec.WudiffErr = err.Error()
	} else {
		for _, r := range results {
			if r.Op != wudiff.Common {
				rec.WudiffChurn++
			}
		}
	}

	dmp := diffmatchpatch.New()
	rx, ry, lines := dmp.DiffLinesToRunes(string(old), string(new))
	diffs := dmp.DiffMainRunes(rx, ry, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		rec.DMPChurn += len(strings.SplitAfter(d.Text, "\n")) - 1
	}

	rec.Agree = rec.WudiffErr == "" && rec.WudiffChurn == rec.DMPChurn
	return rec, nil
}
