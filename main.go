package main

import "github.com/sebasdelalv340/carrera-go/cmd"

func main() {
	cmd.Execute()
}
