// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/docking/decoder"
)

func main() {
	var version int
	var verbose bool

	flag.IntVar(&version, "version", decoder.VERSION_2, "Decoder chip version (1 or 2)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	sources := flag.Args()
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	ps := &decoder.Parser{Verbose: verbose}

	var progs []*decoder.Program
	for _, source := range sources {
		var prog *decoder.Program
		var err error
		if source == "-" {
			prog, err = ps.Parse("<stdin>", os.Stdin)
		} else {
			var inf *os.File
			inf, err = os.Open(source)
			if err != nil {
				log.Fatalf("%v: %v", source, err)
			}
			prog, err = ps.Parse(source, inf)
			inf.Close()
		}
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		progs = append(progs, prog)
	}

	dec := decoder.NewDecoder()
	dec.Version = version
	dec.Verbose = verbose

	err := dec.Execute(progs...)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	fmt.Println(dec.Sum())
}
