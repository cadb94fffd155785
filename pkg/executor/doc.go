// Package executor runs the external commands of a snapshot run.
//
// A command is either a shell line, handed to the configured shell with -c,
// or an argument vector, launched directly. Output is captured with stdout
// and stderr combined. Failures are reported in the returned outcome and
// never as errors: callers decide whether to continue. Under dry-run the
// executor only logs what it would have launched.
package executor
