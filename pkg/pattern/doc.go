// Package pattern implements the two pure stages of a rename: matching file
// names against a wildcard source pattern, and interpolating the captured
// values into a target template.
//
// Source patterns treat '*' as "zero or more characters other than '.'";
// every other character is literal. A pattern is compiled once into an
// anchored regular expression with one capturing group per wildcard:
//
//	file-*.txt   ->   ^file-([^.]*)\.txt$
//
// Captures are returned in wildcard order, but a wildcard that matched the
// empty string contributes nothing. Matching "file.png" against "*file*.png"
// therefore yields no captures at all, and with "*file*.png" against
// "file_2.png" the value "_2" is capture #1, not #2.
//
// Target templates reference captures by 1-based position with '#':
//
//	file-#1-v1.txt   with captures [1]   ->   file-1-v1.txt
//
// There is no escape for a literal '*' or '#'.
package pattern
