// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package main

import (
	"github.com/lumenware/ledwire/demo/rainbow"
)

func main() {
	rainbow.Main()
}
