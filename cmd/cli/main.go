// hostparse - hosts file parser
//
// hostparse reads hosts files into structured entries that remember the line
// they came from, either leniently or rejecting malformed lines.
package main

import (
	"os"

	"github.com/ccollicutt/hostparse/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
