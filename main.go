package main

import (
	"flag"
	"io"
	"log"
	"os"
)

var elements = flag.Int("n", 100000, "elements pushed through the vec")
var handles = flag.Int("handles", 1000, "clones made by every arc worker")
var workers = flag.Int("workers", 8, "goroutines sharing one arc")
var ringSize = flag.Int("ring", 4, "ring buffer slots")
var quiet = flag.Bool("q", false, "print only the report")

func main() {
	log.SetFlags(log.Lmicroseconds | log.Lshortfile)
	flag.Parse()
	if *elements < 0 || *handles < 0 || *workers < 1 || *ringSize < 1 {
		log.Fatal("sizes must be positive")
	}
	if *quiet {
		log.SetOutput(io.Discard)
	}

	var rep Report
	rep.Vec = checkVec(*elements)
	log.Printf("vec: %d elements, cap %d, ok=%v", rep.Vec.Pushed, rep.Vec.Cap, rep.Vec.OK)
	rep.Arc = checkArc(*workers, *handles)
	log.Printf("arc: %d workers, %d drops, ok=%v", rep.Arc.Workers, rep.Arc.Drops, rep.Arc.OK)
	rep.Ring = checkRing(*ringSize)
	log.Printf("ring: %d slots, ok=%v", rep.Ring.Size, rep.Ring.OK)

	if err := rep.Write(os.Stdout); err != nil {
		log.Fatal(err)
	}
	if !rep.OK() {
		os.Exit(1)
	}
}
