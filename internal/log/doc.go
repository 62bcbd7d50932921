// Package log provides logging for taskreport, built on top of the
// standard slog package.
//
// Task prompts are arbitrary user text: they can be very long and they
// sometimes embed credentials that were pasted into a task description.
// The PromptHandler keeps both out of the logs by truncating oversized
// attribute values and masking values that look like secrets before the
// record reaches the underlying handler.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("row scanned", "prompt", task.Prompt) // truncated/masked
//	slog.SetDefault(logger)
package log
