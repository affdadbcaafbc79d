// Package easylog is a leveled, labeled logging pipeline with colorized
// console output, optional file targets, and in-memory line buffers. A single
// mutable configuration object drives every sink, so toggling a State flag
// changes behaviour for all subsequent log calls at once.
//
// # Design overview
//
//   - One emission path: every public call builds a record (level, label,
//     message, colorize ranges, call site, timestamp) and hands it to the
//     dispatcher, either inline or through the background worker when
//     ThreadedLog is enabled.
//   - Snapshot per record: the dispatcher reads the configuration once per
//     record, so a record is rendered under one consistent view even while
//     another goroutine flips toggles.
//   - Two renderings: console lines color the level tag and metadata block,
//     file lines never do. Colorize ranges are applied to the message itself
//     before either rendering.
//   - Isolated sinks: a failing or panicking sink never disturbs the others;
//     failures land in SinkStats counters and the optional OnWriteError
//     callback.
//
// # Usage
//
//	easylog.Info("service ready")
//	easylog.Error("connect failed",
//		easylog.Colorize{Target: "failed", Color: ansi.BoldRed})
//
// Labels group related output and feed the label-keyed buffers:
//
//	db := easylog.Label("database")
//	db.Warning("slow query")
//
// Positional templates are rendered with Format:
//
//	easylog.Info(easylog.Format("took {:f2} ms after {} retries", 12.3456, 3))
//
// File output goes to log.txt until redirected; named targets are registered
// with AddFileLogger and selected with UseFileLogger:
//
//	easylog.SetState(easylog.FileLog, true)
//	easylog.AddFileLogger("audit", "audit.log", easylog.Append)
//
// # Integration notes
//
//   - Use New or NewWithOptions for an isolated pipeline; the top-level
//     functions share one package-level Logger.
//   - SetState(ThreadedLog, true) moves dispatch onto a background worker;
//     Wait drains the queue before shutdown.
//   - The ansi subpackage exposes the color palette used by level tags,
//     metadata, and Colorize ranges.
//   - LoadConfig applies a YAML file to a running logger.
package easylog
