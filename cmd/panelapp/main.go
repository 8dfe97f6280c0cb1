package main

import "github.com/ITour-BioInfo/PanelAppByIvan/internal/cli"

func main() {
	cli.Execute()
}
