// pt-web-ui shows the local web UI in a kiosk browser.
package main

import (
	"fmt"
	"io"
	"os"

	"pt-web-ui/internal/cmd"
)

var (
	run    = cmd.Execute
	stderr io.Writer = os.Stderr
	osExit           = os.Exit
)

func main() {
	err := run()
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "pt-web-ui: %v\n", err)
	osExit(1)
}
