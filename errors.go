package namaste

import (
	"github.com/fhirfly/namaste-sdk/internal/pkg/exceptions"
)

// Error is the concrete type behind every failure the client returns. Use
// errors.As to reach it, or IsKind and StatusCode to inspect a chain.
type Error = exceptions.CustomError

type Kind = exceptions.Kind

const (
	KindAuth            = exceptions.KindAuth
	KindNetwork         = exceptions.KindNetwork
	KindHTTP            = exceptions.KindHTTP
	KindTimeout         = exceptions.KindTimeout
	KindParse           = exceptions.KindParse
	KindUpstream        = exceptions.KindUpstream
	KindInvalidArgument = exceptions.KindInvalidArgument
	KindNotFound        = exceptions.KindNotFound
	KindInternal        = exceptions.KindInternal
)

// IsKind reports whether any error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool { return exceptions.IsKind(err, kind) }

// KindOf returns the kind of the outermost client error in err's chain.
func KindOf(err error) Kind { return exceptions.KindOf(err) }

// StatusCode returns the HTTP status of the response that caused err, or 0
// when no response was received.
func StatusCode(err error) int { return exceptions.StatusCode(err) }
