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

package wudiff

// config holds the options accepted by [Diff], [DiffFunc], [Hunks], and [HunksFunc]. This package
// exposes two tunables, context and budget, so a single config struct suffices.
type config struct {
	context int
	budget  int
}

// Option configures the behavior of comparison functions.
type Option func(*config)

// Context sets the number of matching elements to include as a prefix and postfix for hunks
// returned by [Hunks] and [HunksFunc]. The default is 3. Context has no effect on [Diff] or
// [DiffFunc], which always return every element of the script.
func Context(n int) Option {
	return func(cfg *config) {
		cfg.context = max(0, n)
	}
}

// Budget bounds the number of snake steps the search may perform before giving up. It is a
// cooperative escape hatch, not part of the core algorithm: a zero or negative budget (the
// default) means unlimited. Once exceeded, [Diff] and [DiffFunc] return the error
// [znkr.io/wudiff/internal/wu.ErrBudgetExceeded] wrapped with call-site context.
//
// [znkr.io/wudiff/internal/wu.ErrBudgetExceeded]: https://pkg.go.dev/znkr.io/wudiff/internal/wu#ErrBudgetExceeded
func Budget(n int) Option {
	return func(cfg *config) {
		cfg.budget = n
	}
}

func resolve(opts []Option) config {
	cfg := config{context: 3}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
