// Package main provides the gnflora CLI application.
// gnflora describes plant species observed near a location.
package main

import "github.com/gnames/gnflora/cmd"

func main() {
	cmd.Execute()
}
