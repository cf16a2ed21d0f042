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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error but allow the test to continue.
// The Demand functions are the same except that a failure is fatal. Use a
// Demand function when later parts of the test depend on the value being
// correct. For example, checking the length of a slice before indexing it.
//
// ExpectSuccess and ExpectFailure interpret their argument according to its
// type:
//
//	bool  -> success is true
//	error -> success is nil
//	nil   -> success
//
// The nil case is worth noting. An error interface that is nil arrives at the
// function as the nil type and not as a nil error, so nil has to be treated
// as success.
//
// CompareWriter implements the io.Writer interface and should be used to
// capture output. The Compare() function can then be used to test for
// equality.
package test
