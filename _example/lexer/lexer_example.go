package main

import (
	"fmt"
	"log"

	"github.com/xiam/minilisp/lexer"
)

func main() {
	input := `
		(define (square x)
			(* x x))
		(display (square 3.5) "done" #t)
	`

	tokens, table, err := lexer.Scan([]byte(input))
	if err != nil {
		log.Fatal("lexer.Scan:", err)
	}

	for i, tok := range tokens {
		entry := table[tok.Index()]

		fmt.Printf("token[%d] (type: %v, row: %d, col: %d)\n", i, tok.Type(), entry.Row, entry.Col)
		if entry.Value != nil {
			fmt.Printf("\t-> %v %s\n", entry.Value.Type(), entry.Value.Encode())
		}
		fmt.Println()
	}
}
