// Package harness executes black-box acceptance scenarios against the
// blade command tree.
//
// A scenario is a YAML file listing CLI invocations with expected stdout
// or expected error codes. The harness runs each invocation through a
// fresh command instance over a scratch database, mirroring the
// one-process-per-operation model, and records a transcript. Golden files
// pin the transcripts so output-format regressions show up as diffs.
package harness
