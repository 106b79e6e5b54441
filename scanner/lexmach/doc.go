/*
Package lexmach provides a tokenizer for filter queries which recognizes
the terminals of a grammar, backed by a lexmachine DFA.

Splitting query input at white space (see package scanner) requires terminals
to be separated by blanks. A grammar for arithmetic expressions, however, has
terminals like "(", "+" or "num", which appear without blanks in between in
real input:

    num+(num*num)

ForGrammar compiles a lexer with one literal pattern per terminal. Lexmachine
prefers the longest match, so a terminal "ab" wins over a terminal "a" for
input "ab". White space between terminals is skipped. Each token carries the
level of its terminal as its token type.

    lm, err := lexmach.ForGrammar(g)
    sc, err := lm.Scanner("num+(num*num)")
    tokens := scanner.Lexemes(sc)  // [num + ( num * num )]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package lexmach
