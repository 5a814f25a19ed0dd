// Package normalisers provides implementations of the Normaliser interface
// for the document formats the corpus may contain. Each normaliser knows
// how to flatten one format into plain text.
package normalisers
