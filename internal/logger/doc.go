// Package logger provides logging facilities for the gitpix application.
//
// Two audiences are served by one interface. Internal messages (Info, Warning,
// Error) describe what the tool is doing and land in a debug log file written
// through zap when debug logging is enabled. User-facing messages (InfoToUser,
// WarningToUser, Success, StatusMessage) are the tool's actual output: the
// preview, commit progress and the final summary.
//
// # Usage
//
//	log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
//	defer log.Close()
//
//	log.Info("commit run %s started", runID)  // debug file only
//	log.StatusMessage("  %d / %d commits done...", n, total)
//	log.Error("commit #%d failed: %v", n, err) // file and stderr
//
// DefaultLogger is safe for concurrent use; gitpix itself only logs from one goroutine
// plus the signal handler.
package logger
