// Package common contains shared constants, sentinel errors, and small
// utilities used across reComenzar client components. Callers should match
// the sentinel errors with errors.Is.
package common
