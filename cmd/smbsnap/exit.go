package smbsnap

import (
	"fmt"
	"io"

	"github.com/arthur-debert/smbsnap/pkg/config"
	"github.com/arthur-debert/smbsnap/pkg/errors"
	"github.com/arthur-debert/smbsnap/pkg/paths"
	"github.com/arthur-debert/smbsnap/pkg/ui/styles"
	"go.uber.org/multierr"
)

// Exit codes of the smbsnap binary
const (
	ExitOK             = 0
	ExitConfigNotFound = 1
	ExitConfigInvalid  = 2
	ExitSharesRoot     = 3
	ExitRunFailed      = 4
)

// ExitCode maps an error returned by a command to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrConfigNotFound:
		return ExitConfigNotFound
	case errors.ErrConfigLoad, errors.ErrConfigParse, errors.ErrConfigValid,
		errors.ErrConfigMissing, errors.ErrShareNotFound:
		return ExitConfigInvalid
	case errors.ErrSharesRootNotFound:
		return ExitSharesRoot
	case errors.ErrRunFailed:
		return ExitRunFailed
	default:
		return 1
	}
}

// ReportError writes a human readable account of err to w. A missing
// configuration file is followed by a sample configuration.
func ReportError(w io.Writer, err error) {
	errorStyle := styles.GetStyle("Error")

	switch errors.GetErrorCode(err) {
	case errors.ErrConfigNotFound:
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(MsgConfigNotFound, paths.LegacyConfigFile)))
		if sample, sampleErr := config.GenerateSample(); sampleErr == nil {
			fmt.Fprint(w, sample)
		}
	case errors.ErrConfigValid, errors.ErrShareNotFound:
		if snapErr, ok := errors.As(err); ok && snapErr.Wrapped != nil {
			for _, problem := range multierr.Errors(snapErr.Wrapped) {
				fmt.Fprintln(w, errorStyle.Render(describe(problem)))
			}
			return
		}
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
	case errors.ErrSharesRootNotFound:
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf(MsgSharesRootAbsent, errors.Detail(err, "path"))))
	case errors.ErrRunFailed:
		fmt.Fprintln(w, errorStyle.Render(MsgRunFailed))
	default:
		fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
	}
}

// describe renders one configuration problem as a single line
func describe(err error) string {
	if errors.IsErrorCode(err, errors.ErrConfigMissing) {
		return fmt.Sprintf(MsgMissingKey, errors.Detail(err, "key"))
	}
	snapErr, ok := errors.As(err)
	if !ok {
		return err.Error()
	}
	if cause, ok := errors.As(snapErr.Wrapped); ok {
		return snapErr.Message + ": " + cause.Message
	}
	return snapErr.Message
}
