// Package uniuri generates random strings good for use in URIs and as
// identifiers, such as session IDs.
//
// It uses crypto/rand and avoids modulo bias by rejection sampling, so
// every character of the output is uniformly distributed over the
// allowed character set.
package uniuri
