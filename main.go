package main

import "github.com/AntonioSertic23/nextup/cmd"

func main() {
	cmd.Execute()
}
