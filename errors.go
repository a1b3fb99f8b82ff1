package chansignal

import "golang.org/x/xerrors"

var (
	ErrNoSignals           = xerrors.New("chansignal: no signals requested")
	ErrUnsupportedSignal   = xerrors.New("chansignal: unsupported signal")
	ErrUnsupportedPlatform = xerrors.New("chansignal: platform has no POSIX signals")
	ErrNilChannel          = xerrors.New("chansignal: nil channel")

	// ErrIntakeClosed is the panic value of a listener whose signal source
	// closed the intake channel. Delivery cannot continue after that.
	ErrIntakeClosed = xerrors.New("chansignal: signal intake closed")
)
