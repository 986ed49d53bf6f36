// Package fileutil reads and writes whole files as strings.
//
// Every call opens and closes its own handle. ReadFile and WriteFile report
// failures as errors wrapping one of the package sentinels, while Read and
// Write keep the lenient contract: a failed read yields an empty string and
// a failed write yields false.
package fileutil
