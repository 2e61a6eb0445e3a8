// Package main Repodeck dashboard
//
// Repodeck serves a read-only HTML dashboard reporting the synchronization
// state of a configured set of local Git working directories.
package main

import "github.com/repodeck/repodeck/cmd"

func main() {
	cmd.Execute()
}
