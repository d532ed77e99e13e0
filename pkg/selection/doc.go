// Package selection picks the files a rename run operates on, either from
// an explicit argument list or from a glob walk. Glob selection matches
// files only and reports every filesystem error from the walk at once, so
// a run never starts against a partial listing.
package selection
