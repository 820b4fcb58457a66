// Package forkbranch duplicates the running process once and takes a
// different path in each copy. The child prints a greeting and the parent does
// nothing further. No ordering between the two is assumed.
package forkbranch
