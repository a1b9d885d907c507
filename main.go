package main

import (
	"log"

	"github.com/rhtools/cv-screener/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
