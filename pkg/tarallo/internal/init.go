// Package internal contains infrastructure shared by the tarallo packages:
// logging and the pure geometry behind the SDL renderer's rounded fills.
// Types and functions in this package are not part of the public API.
package internal
