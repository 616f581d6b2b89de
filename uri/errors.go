package uri

// ErrorCode classifies a parse failure.
// It implements error, so a [ParseError] can be matched with [errors.Is].
type ErrorCode string

const (
	ErrInvalidScheme    ErrorCode = "invalid_scheme"
	ErrInvalidAuthority ErrorCode = "invalid_authority"
	// ErrInvalidPath, ErrInvalidQuery and ErrInvalidFragment are reserved for stricter
	// component checks. [Parse] never returns them.
	ErrInvalidPath     ErrorCode = "invalid_path"
	ErrInvalidQuery    ErrorCode = "invalid_query"
	ErrInvalidFragment ErrorCode = "invalid_fragment"
)

func (c ErrorCode) Error() string { return string(c) }

func (ErrorCode) Grammar() bool { return true }

// Message returns the static diagnostic message of the code.
func (c ErrorCode) Message() string {
	switch c {
	case ErrInvalidScheme:
		return "Invalid scheme syntax"
	case ErrInvalidAuthority:
		return "Authority contains invalid characters"
	case ErrInvalidPath:
		return "Invalid path syntax"
	case ErrInvalidQuery:
		return "Invalid query syntax"
	case ErrInvalidFragment:
		return "Invalid fragment syntax"
	default:
		return "Invalid URI syntax"
	}
}

// ParseError is returned by [Parse] when the input cannot be split.
type ParseError struct {
	Code    ErrorCode
	Message string
}

func newParseError(code ErrorCode) *ParseError {
	return &ParseError{Code: code, Message: code.Message()}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Code
}

func (*ParseError) Grammar() bool { return true }
