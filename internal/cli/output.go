package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer // defaults to os.Stdout
	Err   io.Writer // defaults to os.Stderr
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result. message is used in human mode.
func (f *OutputFormatter) Success(message string, data interface{}) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}
	if f.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(f.out(), message)
	return err
}

// Println writes a human-readable line unless JSON or quiet mode is on
func (f *OutputFormatter) Println(text string) {
	if f.JSON || f.Quiet {
		return
	}
	_, _ = fmt.Fprintln(f.out(), text)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports an error through the formatter and returns it wrapped with an exit code
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	if fmtErr := f.Error(code, err.Error()); fmtErr != nil {
		fmt.Fprintf(f.errOut(), "Error formatting error message: %v\n", fmtErr)
	}
	return Exit(exitCode, err)
}
