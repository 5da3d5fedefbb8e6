// Package profile provides optional runtime profiling for the acf
// application.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] to provide runtime
// profiling with conditional compilation support. Profiling is optional and
// must be enabled at build time using the "pprof" build tag.
//
// When built with profiling disabled (default), all operations are no-ops
// with zero runtime overhead.
//
// # Available Profiling Modes
//
// The following profiling modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
// The profiler is configured with functional options on [Config] and started
// with [Config.Start]:
//
//	var cfg profile.Config = func() (string, string, bool) {
//	    return "", "", false
//	}
//	cfg = profile.WithMode("cpu")(cfg)
//	cfg = profile.WithPath("/tmp/profiles")(cfg)
//	ctrl := cfg.Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names matching
// the profiling mode (e.g., cpu.pprof, mem.pprof).
//
// # Command-Line Usage
//
// The acf command supports profiling through command-line flags when built
// with the pprof tag:
//
//	# Enable CPU profiling (writes to default cache directory)
//	./acf --pprof-mode cpu fmt manifest.acf
//
//	# Enable heap profiling with custom output directory
//	./acf --pprof-mode heap --pprof-dir ./profiles fmt manifest.acf
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/acf/pprof   (Linux/Unix)
//	~/Library/Caches/acf/pprof  (macOS)
//	%LocalAppData%\acf\pprof    (Windows)
//
// # Analyzing Profile Data
//
// Use the go tool pprof command to analyze profile data:
//
//	# Analyze a CPU profile with the original binary for symbol resolution
//	go tool pprof ./acf /tmp/profiles/cpu.pprof
//
//	# Open web UI with flame graphs
//	go tool pprof -http=: /tmp/profiles/cpu.pprof
//
//	# Compare two profiles
//	go tool pprof -base=old.pprof new.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
