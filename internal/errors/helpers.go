package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error.
// For wrapped errors the innermost InvalidArgument message wins, so a
// notice shows the rule that was broken rather than the wrapping context.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return err.Error()
	}

	for cur := customErr; cur != nil; {
		if cur.Code == CodeInvalidArgument && cur.Cause == nil {
			return cur.Message
		}
		var next *Error
		if cur.Cause == nil || !errors.As(cur.Cause, &next) {
			break
		}
		cur = next
	}

	return customErr.Message
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
