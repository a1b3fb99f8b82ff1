//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package chansignal

import "os"

const platformSupported = false

func platformNum(Signal) int { return -1 }

func platformOS(Signal) os.Signal { return nil }

func platformName(Signal) string { return "" }

func platformFromOS(os.Signal) (Signal, bool) { return 0, false }

func platformLookup(string) (Signal, bool) { return 0, false }

func raise(Signal) error { return ErrUnsupportedPlatform }

func kill(int, Signal) error { return ErrUnsupportedPlatform }
