/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/BurritoBandit28/Memory-Game/cmd"

func main() {
	cmd.Execute()
}
