// Command aspectlock-shared builds the aspect lock as a C shared library so
// non-Go hosts (e.g. a game engine loading native plugins) can use it:
//
//	go build -buildmode=c-shared -o aspectlock.dll ./cmd/aspectlock-shared
//
// All three exports follow the 0/1 convention of the package boundary. The
// host must call AspectLock_Uninstall before unloading the library;
// otherwise the window keeps dispatching resize events into unloaded code.
package main

import "C"

import "aspectlock/pkg/aspectlock"

//export AspectLock_Install
func AspectLock_Install(aspectWidth, aspectHeight C.float) C.int {
	return C.int(aspectlock.Install(float64(aspectWidth), float64(aspectHeight)))
}

//export AspectLock_Uninstall
func AspectLock_Uninstall() {
	aspectlock.Uninstall()
}

//export AspectLock_IsInstalled
func AspectLock_IsInstalled() C.int {
	return C.int(aspectlock.IsInstalled())
}

func main() {}
