package main

import "github.com/duartev/pioneiro/cmd"

func main() {
	cmd.Execute()
}
