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

// wudiff is a small CLI that prints a unified diff of two files using the wudiff library.
package main

import (
	"flag"
	"fmt"
	"os"

	"znkr.io/wudiff"
	"znkr.io/wudiff/textdiff"
)

type config struct {
	context int
	budget  int
	old     string
	new     string
}

func main() {
	var cfg config
	flag.IntVar(&cfg.context, "C", 3, "number of context lines around each change")
	flag.IntVar(&cfg.budget, "budget", 0, "cooperative search budget (0 means unlimited)")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: wudiff [flags] <old> <new>\n")
		os.Exit(1)
	}
	cfg.old, cfg.new = flag.Arg(0), flag.Arg(1)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	old, err := os.ReadFile(cfg.old)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.old, err)
	}
	new, err := os.ReadFile(cfg.new)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.new, err)
	}

	opts := []wudiff.Option{wudiff.Context(cfg.context)}
	if cfg.budget > 0 {
		opts = append(opts, wudiff.Budget(cfg.budget))
	}

	out := textdiff.UnifiedBytes(old, new, opts)
	if len(out) == 0 {
		return nil
	}
	fmt.Printf("--- %s\n+++ %s\n", cfg.old, cfg.new)
	os.Stdout.Write(out)
	return nil
}
