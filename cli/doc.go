// Package cli contains the command line interface for acf.
//
// # Usage
//
// The CLI reads ACF documents from files or stdin and exposes subcommands for
// reformatting, key-path lookup, predicate queries, and interactive browsing:
//
//	acf fmt json manifest.acf
//	acf get AppState name --source manifest.acf
//	acf query 'appid == "440"' --source manifest.acf
//	acf browse manifest.acf
//
// # Configuration Loader
//
// The package includes a Kong configuration loader ([resolve]) that reads
// config files written in ACF syntax and converts them to Kong flag values.
// The loader exercises the same parser the subcommands use.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o acf ./cmd/acf
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/acf/pprof)
//
// # Examples
//
//	# Debug logging with CPU profiling
//	acf --log-level=debug --pprof-mode=cpu fmt manifest.acf
//
//	# Text format with heap profiling
//	acf --log-format=text --pprof-mode=heap fmt manifest.acf
package cli
