// Package wordlist loads word and symbol lists from files and caches the
// normalized result on disk.
//
// List files hold one entry per line. Blank lines and lines starting with
// '#' are skipped, entries are trimmed, and duplicates are dropped keeping
// the first occurrence. Files may be UTF-8 (with or without BOM) or UTF-16
// with a BOM.
package wordlist
