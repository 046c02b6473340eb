package main

import "github.com/tracemodular/trace-eurorack/cmd/trace/cmd"

func main() {
	cmd.Execute()
}
