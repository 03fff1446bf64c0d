package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	ErrorColor = color.New(color.FgRed, color.Bold) // errors that abort a run
	WarnColor  = color.New(color.FgYellow)          // recovered, degraded items
	InfoColor  = color.New(color.FgCyan)            // progress notes
)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", ErrorColor.Sprint("ERROR"), msg, err)
	os.Exit(1)
}

// LogWarn logs a recoverable problem. The run continues.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", WarnColor.Sprint("WARN"), msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", WarnColor.Sprint("WARN"), msg)
}

// LogInfo logs a progress note to stderr so stdout stays clean for
// table/CSV/JSON output.
func LogInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", InfoColor.Sprint("INFO"), fmt.Sprintf(format, args...))
}

// TruncateEntity shortens a table key to a maximum width, keeping the
// tail visible since suffixes carry the distinguishing part of emails
// and long identifiers.
func TruncateEntity(entity string, maxWidth int) string {
	runes := []rune(entity)
	if maxWidth <= 3 || len(runes) <= maxWidth {
		return entity
	}
	return "..." + string(runes[len(runes)-maxWidth+3:])
}

// SelectOutputFile returns the appropriate file handle for output.
// An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}
