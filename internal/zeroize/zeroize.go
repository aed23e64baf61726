// Package zeroize overwrites secret buffers with zero bytes in a way the
// compiler cannot optimize away as a dead store.
package zeroize

import "runtime"

// Bytes overwrites b with zeros. Callers must call it on every exit path,
// including error returns, for any buffer that held secret key material.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
