package main

import (
	"log"
	"os"

	"github.com/Uaq907/estateflow-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
