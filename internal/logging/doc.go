// Package logger provides leveled logging for pasteportal CLI commands.
//
// Output is formatted with colored prefixes. Verbosity is controlled by
// the --verbose and --debug flags of each command group.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Shown with --verbose or --debug
//	Logger.WarnfAlways()    // Always shown
//	Logger.Errorf()         // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Never pass plaintext, blobs or secrets to a Logger. Log sizes, paths and
// error kinds instead.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Sealing %d files", count)
package logger
