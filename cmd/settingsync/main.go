package main

import (
	"os"

	"github.com/viant/settingsync/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
