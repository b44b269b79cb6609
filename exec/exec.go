// Package exec fetches page content by running adapter commands as child
// processes.
package exec
