package main

import (
	"embed"
	"os"

	"github.com/toshiksharma271/collab-insight-engine/cmd"
)

//go:embed data/*.toml
var dataFS embed.FS

func main() {
	cmd.SetDataFS(dataFS)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
