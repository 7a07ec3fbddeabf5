package main

import "os"

func main() {
	if err := newRootCmd(newEnv).Execute(); err != nil {
		os.Exit(1)
	}
}
