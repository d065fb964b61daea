package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// RunWithSpinner runs fn while a spinner with message is shown on w. In
// quiet mode fn runs without any decoration.
func RunWithSpinner(w io.Writer, quiet bool, message string, fn func() error) error {
	if quiet {
		return fn()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()

	err := fn()
	s.Stop()

	if err != nil {
		fmt.Fprintln(w, FormatError(err))
	}
	return err
}
