// features.go - Build-time capability registry

package main

import (
	"fmt"
	"runtime"
	"sort"
)

// Version is stamped by the build; "dev" for a plain go build.
var Version = "dev"

// compiledFeatures tracks build-tag selected capabilities via init()
// registration from the files that carry them.
var compiledFeatures []string

func printFeatures() {
	fmt.Printf("RetroRay %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Printf("  %s\n", f)
	}
}
