// This file is part of Cheat Console.
//
// Cheat Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cheat Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cheat Console.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides a local HTTP server offering runtime statistics
// of the cheat console process. The server is only available when the program
// is built with the statsview build tag. Without the tag, Launch() writes a
// message to the output and Available() returns false.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address is the address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"
