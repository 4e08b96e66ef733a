package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/WhiCu/dstack"
)

var (
	out         = bufio.NewWriter(os.Stdout)
	capacity    = flag.Int("capacity", 2, "initial stack capacity")
	maxCapacity = flag.Int("max-capacity", 0, "maximum stack capacity (0: unlimited)")
)

// usage: main [-capacity n] [-max-capacity n] 1 2 3 pop peek pop
func main() {
	flag.Parse()
	defer out.Flush()

	if err := run(out, *capacity, *maxCapacity, flag.Args()); err != nil {
		out.Flush()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(w io.Writer, capacity, maxCapacity int, script []string) error {
	s, err := dstack.New(capacity, dstack.WithMaxCapacity(maxCapacity))
	if err != nil {
		return err
	}

	for _, tok := range script {
		switch tok {
		case "pop":
			v, err := s.Pop()
			if err != nil {
				return fmt.Errorf("pop: %w", err)
			}
			fmt.Fprintf(w, "pop  %v\tlen=%d cap=%d\n", v, s.Len(), s.Cap())
		case "peek":
			v, err := s.Peek()
			if err != nil {
				return fmt.Errorf("peek: %w", err)
			}
			fmt.Fprintf(w, "peek %v\tlen=%d cap=%d\n", v, s.Len(), s.Cap())
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return fmt.Errorf("bad token %q: %w", tok, err)
			}
			if err := s.Push(v); err != nil {
				return fmt.Errorf("push %v: %w", v, err)
			}
			fmt.Fprintf(w, "push %v\tlen=%d cap=%d full=%t\n", v, s.Len(), s.Cap(), s.IsFull())
		}
	}
	fmt.Fprintln(w, "stack:", s)
	return nil
}
