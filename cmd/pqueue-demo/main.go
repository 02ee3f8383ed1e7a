package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/YuriyNasretdinov/pqueue"
)

var count = flag.Int("count", 10, "How many integers to push through each queue")

func main() {
	flag.Parse()

	if *count < 0 {
		log.Fatalf("The flag `--count` must not be negative")
	}

	if err := run(os.Stdout, *count); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}

// run pushes the integers 0..n-1 into a max and a min queue and prints
// both extraction orders.
func run(w io.Writer, n int) error {
	maxQueue := pqueue.New[int]()
	minQueue := pqueue.NewMin[int]()

	for i := 0; i < n; i++ {
		maxQueue.Push(i)
		minQueue.Push(i)
	}

	fmt.Fprintln(w, "Max priority queue:")
	if err := drain(w, maxQueue); err != nil {
		return err
	}

	fmt.Fprintln(w, "Min priority queue:")
	return drain(w, minQueue)
}

func drain(w io.Writer, q *pqueue.Queue[int]) error {
	vals := make([]string, 0, q.Len())

	for !q.Empty() {
		v, err := q.Pop()
		if err != nil {
			return fmt.Errorf("pop: %w", err)
		}

		vals = append(vals, strconv.Itoa(v))
	}

	_, err := fmt.Fprintln(w, strings.Join(vals, " "))
	return err
}
