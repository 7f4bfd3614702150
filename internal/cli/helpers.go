package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pasomd/internal/models"
	boardservice "github.com/thenoetrevino/pasomd/internal/services/board"
)

// Formatter builds an OutputFormatter from the command's --json/--quiet flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// Classify maps an error to an exit code and a machine-readable error code
func Classify(err error) (exitCode int, code string) {
	switch {
	case errors.Is(err, models.ErrBlockNotFound):
		return ExitNotFound, "BLOCK_NOT_FOUND"
	case errors.Is(err, os.ErrNotExist):
		return ExitNotFound, "DOCUMENT_NOT_FOUND"
	case errors.Is(err, models.ErrInvalidPayload):
		return ExitDataErr, "INVALID_PAYLOAD"
	case errors.Is(err, boardservice.ErrEmptyPath), errors.Is(err, boardservice.ErrInvalidBlockIndex):
		return ExitUsage, "INVALID_ARGUMENT"
	default:
		return ExitError, "EDIT_FAILED"
	}
}

// Report prints err through the formatter and wraps it with the matching exit code
func Report(f *OutputFormatter, err error) error {
	exitCode, code := Classify(err)
	return f.Fail(exitCode, code, err)
}
