package pkg

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/colorstring"
)

var (
	// Output receives everything printed by the Print* helpers.
	Output io.Writer = os.Stdout

	colors = colorstring.Colorize{
		Colors: colorstring.DefaultColors,
		Reset:  true,
	}
)

// DisableColors strips the colour codes from the Print* helpers (for CI logs).
func DisableColors() {
	colors.Disable = true
}

func PrintTask(msg string) {
	fmt.Fprintf(Output, "%s %s\n", colors.Color("[blue][bold]==>"), msg)
}

func PrintSubtask(msg string) {
	fmt.Fprintf(Output, "%s %s\n", colors.Color("[green][bold]  ->"), msg)
}

func PrintError(msg string) {
	fmt.Fprintf(Output, "%s %s\n", colors.Color("[red][bold]  ->"), msg)
}
