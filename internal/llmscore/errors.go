package llmscore

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/googleapi"
)

// ErrQuotaExhausted means the daily request budget of the API key is spent.
// Once seen, no further calls are made for the life of the process.
var ErrQuotaExhausted = errors.New("llm daily quota exhausted")

// RetryableError is returned when every attempt failed with a transient error.
type RetryableError struct {
	Attempts int
	Err      error
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("llm call failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// quota violations carry the limit name, e.g. GenerateRequestsPerDayPerProjectPerModel
var quotaSignatures = []string{"PerDay", "per_day"}

func hasQuotaSignature(s string) bool {
	for _, sig := range quotaSignatures {
		if strings.Contains(s, sig) {
			return true
		}
	}
	return false
}

// IsQuotaError reports whether err signals daily quota exhaustion rather than
// a transient failure.
func IsQuotaError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrQuotaExhausted) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if hasQuotaSignature(apiErr.Message) || hasQuotaSignature(apiErr.Body) {
			return true
		}
		for _, item := range apiErr.Errors {
			if hasQuotaSignature(item.Reason) || hasQuotaSignature(item.Message) {
				return true
			}
		}
	}

	return hasQuotaSignature(err.Error())
}
