package main

import (
	"fmt"
	"log"

	"github.com/xiam/minilisp"
)

func main() {
	inputs := []string{
		`(define (f x) (if (< x 0) (- 0 x) x)) (display (f -3))`,
		`(cons 1 (list 2 3)`,
		`(quote (a b)))`,
	}

	for _, input := range inputs {
		if _, err := minilisp.Check([]byte(input)); err != nil {
			log.Printf("minilisp.Check: %q: %v", input, err)
			continue
		}
		fmt.Printf("%q: ok\n", input)
	}
}
