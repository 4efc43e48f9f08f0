package main

import (
	"context"
	"log"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
