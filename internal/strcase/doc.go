// Package strcase converts strings to upper or lower case.
//
// The package level Upper and Lower functions are byte-wise and locale
// independent: only the ASCII letters change, every other byte is copied as is.
// A Transformer adds an opt-in Unicode mode backed by golang.org/x/text/cases.
package strcase
