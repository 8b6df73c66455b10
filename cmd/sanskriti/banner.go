package main

import (
	"io"

	"github.com/fatih/color"
)

// displayBanner writes the startup banner to w. The banner goes to stderr
// so mode output on stdout stays machine-readable.
func displayBanner(w io.Writer) {
	title := color.New(color.FgYellow, color.Bold)
	title.Fprintln(w, "॥ संस्कृति ॥")
	color.New(color.Faint).Fprintln(w, "a Sanskrit-keyword Lox dialect")
}
