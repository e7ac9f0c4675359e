// Command librdtsc builds a C shared library exposing the cycle counter to
// any host runtime with a C foreign-function interface:
//
//	go build -buildmode=c-shared -o librdtsc.so ./cmd/librdtsc
//
// The library exports a single symbol:
//
//	unsigned long long rdtsc(void);
//
// Loading it from Python, for example:
//
//	import ctypes
//	lib = ctypes.CDLL("./librdtsc.so")
//	lib.rdtsc.restype = ctypes.c_uint64
//	lib.rdtsc()
//
// Registering the function in a host's module table and packaging the
// library are left to the host side.
package main

import "C"

import "github.com/cwbudde/rdtsc/internal/cycles"

//export rdtsc
func rdtsc() C.ulonglong {
	return C.ulonglong(cycles.Read())
}

func main() {}
