// Command smbsnap-manpage writes one man page per smbsnap command into the
// directory given as argument (default: the current directory).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/smbsnap/cmd/smbsnap"
	"github.com/arthur-debert/smbsnap/internal/version"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
		os.Exit(1)
	}

	header := &doc.GenManHeader{
		Title:   "SMBSNAP",
		Section: "8",
		Source:  "smbsnap " + version.Version,
		Manual:  "System Administration",
	}

	if err := doc.GenManTree(smbsnap.NewRootCmd(), header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
