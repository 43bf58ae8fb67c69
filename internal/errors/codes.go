package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"
	CodeNotImplemented   Code = "NOT_IMPLEMENTED"
	CodeTimeout          Code = "TIMEOUT_ERROR"

	// AxonOps API
	CodeTransportError    Code = "TRANSPORT_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"
	CodeResourceNotFound  Code = "RESOURCE_NOT_FOUND"
	CodeUpstreamStatus    Code = "UPSTREAM_STATUS_ERROR"
	CodeDecodeError       Code = "DECODE_ERROR"

	// Generated output
	CodeOutputWriteError Code = "OUTPUT_WRITE_ERROR"
	CodeHCLRenderError   Code = "HCL_RENDER_ERROR"
	CodeInvariantError   Code = "INVARIANT_ERROR"
)

func (c Code) String() string {
	return string(c)
}
