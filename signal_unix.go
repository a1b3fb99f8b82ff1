//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package chansignal

import (
	"os"

	"golang.org/x/sys/unix"
)

const platformSupported = true

var platformSignals = [numSignals]unix.Signal{
	HUP:    unix.SIGHUP,
	INT:    unix.SIGINT,
	QUIT:   unix.SIGQUIT,
	ILL:    unix.SIGILL,
	ABRT:   unix.SIGABRT,
	FPE:    unix.SIGFPE,
	SEGV:   unix.SIGSEGV,
	PIPE:   unix.SIGPIPE,
	ALRM:   unix.SIGALRM,
	TERM:   unix.SIGTERM,
	USR1:   unix.SIGUSR1,
	USR2:   unix.SIGUSR2,
	CHLD:   unix.SIGCHLD,
	CONT:   unix.SIGCONT,
	TSTP:   unix.SIGTSTP,
	TTIN:   unix.SIGTTIN,
	TTOU:   unix.SIGTTOU,
	BUS:    unix.SIGBUS,
	SYS:    unix.SIGSYS,
	TRAP:   unix.SIGTRAP,
	VTALRM: unix.SIGVTALRM,
	XCPU:   unix.SIGXCPU,
	XFSZ:   unix.SIGXFSZ,
	IO:     unix.SIGIO,
	WINCH:  unix.SIGWINCH,
}

var fromPlatform = func() map[unix.Signal]Signal {
	m := make(map[unix.Signal]Signal, numSignals)
	for s := HUP; s < endSignal; s++ {
		m[platformSignals[s]] = s
	}
	return m
}()

func platformNum(s Signal) int { return int(platformSignals[s]) }

func platformOS(s Signal) os.Signal { return platformSignals[s] }

func platformName(s Signal) string { return unix.SignalName(platformSignals[s]) }

func platformFromOS(sig os.Signal) (Signal, bool) {
	n, ok := sig.(unix.Signal)
	if !ok {
		return 0, false
	}
	s, ok := fromPlatform[n]
	return s, ok
}

func platformLookup(name string) (Signal, bool) {
	n := unix.SignalNum(name)
	if n == 0 {
		return 0, false
	}
	s, ok := fromPlatform[n]
	return s, ok
}

func raise(s Signal) error {
	return unix.Kill(unix.Getpid(), platformSignals[s])
}

func kill(pid int, s Signal) error {
	return unix.Kill(pid, platformSignals[s])
}
