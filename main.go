package main

import "github.com/khrees2412/quickcv/cmd"

func main() {
	cmd.Execute()
}
