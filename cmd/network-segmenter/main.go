package main

import "github.com/SIIR3X/network-segmenter/internal/cli"

func main() {
	cli.Execute()
}
