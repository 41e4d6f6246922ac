// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/swinstall/swinstall/internal/issue"

	"github.com/muesli/termenv"
)

// renderIssue writes the catalog entry for id to stderr. Unknown ids are ignored.
func (a *App) renderIssue(id issue.Id) {
	catalogEntry := issue.Get(id)
	if catalogEntry == nil {
		return
	}

	rendered, err := catalogEntry.Render(issueStyle(a.stderr))
	if err != nil {
		slog.Warn("failed to render issue catalog entry", "issueID", id, "error", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// issueStyle picks the glamour style for w: plain text when w is not a
// color-capable terminal, otherwise dark or light to match the background.
func issueStyle(w io.Writer) string {
	out := termenv.NewOutput(w)
	if out.Profile == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// reportError prints the detailed form of err and its catalog entry. It is
// only used in verbose mode; otherwise the short message printed for the
// returned error is enough.
func (a *App) reportError(err error) {
	fmt.Fprintln(a.stderr, WarningStyle.Render("Error: ")+formatErrorForDisplay(err, true))

	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.IssueID != 0 {
		a.renderIssue(ae.IssueID)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
