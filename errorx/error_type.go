package errorx

type ErrorType string

// Codes follow the gRPC status codes:
// https://grpc.github.io/grpc/core/md_doc_statuscodes.html

const (
	// The Unspecified type should not be used, only useful to assert whether or not an error is a CliniaError during cast
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
	ErrorTypeOutOfRange      = ErrorType("OUT_OF_RANGE")
)

func (e ErrorType) String() string {
	return string(e)
}
