// Package validate provides input validation for IP addresses, coordinates,
// and bulk request limits, with stable error codes for API responses.
package validate

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Error codes returned to clients alongside validation failures.
const (
	CodeInvalidIP         = "INVALID_IP"
	CodePrivateIP         = "PRIVATE_IP"
	CodeNotFound          = "NOT_FOUND"
	CodeBulkLimitExceeded = "BULK_LIMIT_EXCEEDED"
	CodeInvalidLatitude   = "INVALID_LATITUDE"
	CodeInvalidLongitude  = "INVALID_LONGITUDE"
	CodeNoCallerIP        = "STDIO_NO_CALLER_IP"
	CodeInternalError     = "INTERNAL_ERROR"
)

// MaxBulkIPs is the maximum number of IPs accepted in a single bulk request.
const MaxBulkIPs = 100

// Error is a validation failure with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validator validates client-supplied inputs.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// IP validates that the given string is a well-formed IPv4 or IPv6 address.
func (v *Validator) IP(ip string) *Error {
	if err := v.validate.Var(ip, "required,ip"); err != nil {
		return NewError(CodeInvalidIP, fmt.Sprintf("Invalid IP address: %s", ip))
	}
	return nil
}

// PublicIP validates that the IP is well-formed and globally routable.
// Private, loopback, link-local, multicast, unspecified, and broadcast
// addresses are rejected.
func (v *Validator) PublicIP(ip string) *Error {
	if err := v.IP(ip); err != nil {
		return err
	}
	if IsPrivate(ip) {
		return NewError(CodePrivateIP, fmt.Sprintf("Private or reserved IP address: %s", ip))
	}
	return nil
}

// Latitude validates that lat is within [-90, 90].
func (v *Validator) Latitude(lat float64) *Error {
	if lat < -90 || lat > 90 {
		return NewError(CodeInvalidLatitude,
			fmt.Sprintf("Latitude must be between -90 and 90, got: %s", formatCoord(lat)))
	}
	return nil
}

// Longitude validates that lng is within [-180, 180].
func (v *Validator) Longitude(lng float64) *Error {
	if lng < -180 || lng > 180 {
		return NewError(CodeInvalidLongitude,
			fmt.Sprintf("Longitude must be between -180 and 180, got: %s", formatCoord(lng)))
	}
	return nil
}

// BulkSize validates that a bulk request does not exceed MaxBulkIPs entries.
func (v *Validator) BulkSize(n int) *Error {
	if n > MaxBulkIPs {
		return NewError(CodeBulkLimitExceeded,
			fmt.Sprintf("Maximum %d IPs per request, got: %d", MaxBulkIPs, n))
	}
	return nil
}

// IsPrivate reports whether the address is not globally routable. The input
// must already be a syntactically valid IP.
func IsPrivate(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	if parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsLinkLocalUnicast() ||
		parsed.IsLinkLocalMulticast() || parsed.IsMulticast() || parsed.IsUnspecified() {
		return true
	}
	// Limited broadcast is not covered by the net.IP classifiers.
	if v4 := parsed.To4(); v4 != nil && v4.Equal(net.IPv4bcast) {
		return true
	}
	return false
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
