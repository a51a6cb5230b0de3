// Package delegate locates the lattis executable and runs it with the
// launcher's original arguments and the resolved environment.
package delegate
