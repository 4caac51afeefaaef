// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// matdrv drives material models along deformation paths
package main

import (
	"os"

	"github.com/cpmech/gosl/io"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		io.Pfred("ERROR: %v\n", err)
		os.Exit(1)
	}
}
