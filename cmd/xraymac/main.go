/*
Copyright © 2021 the xraymac authors.
This file is part of xraymac.

xraymac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

xraymac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with xraymac.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command xraymac computes X-ray mass absorption coefficients.
package main

import (
	"os"

	"github.com/epmatools/xraymac/internal/cli"
)

func main() {
	cfg := cli.NewCfg()
	if err := cfg.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
