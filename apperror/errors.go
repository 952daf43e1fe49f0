package apperror

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies a failure so callers can decide whether a retry of the
// whole operation makes sense. The service never retries internally.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindNotFound
	KindStorageUnavailable
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid_request"
	case KindNotFound:
		return "not_found"
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes two kinded errors match on Kind alone so that sentinel
// comparisons like errors.Is(err, ErrPostNotFound) work across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && (t.Message == "" || t.Message == e.Message)
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// MissingField reports a required field that was absent from the request.
func MissingField(field string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf("missing required field: %s", field)}
}

var (
	ErrPostNotFound = &Error{Kind: KindNotFound, Message: "post not found"}
	ErrBlobNotFound = &Error{Kind: KindNotFound, Message: "blob not found"}
)

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// ToStatus converts a kinded error into the gRPC status surfaced to the
// caller. Unknown errors map to Internal without leaking wrapped detail.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return status.Error(codes.Internal, "internal error")
	}
	switch e.Kind {
	case KindInvalidRequest:
		return status.Error(codes.InvalidArgument, e.Message)
	case KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	case KindStorageUnavailable:
		return status.Error(codes.Unavailable, e.Message)
	case KindCancelled:
		return status.Error(codes.Canceled, e.Message)
	default:
		return status.Error(codes.Internal, e.Message)
	}
}
