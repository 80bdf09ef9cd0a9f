package lotto

import (
	"errors"
	"fmt"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 错误代码常量
const (
	// 系统级错误 (1000-1999)
	ErrCodeSystem        ErrorCode = "LOTTO_1000"
	ErrCodeConfigInvalid ErrorCode = "LOTTO_1001"
	ErrCodeRandomSource  ErrorCode = "LOTTO_1002"

	// 校验错误 (2000-2999)
	ErrCodeInvalidNumberCount ErrorCode = "LOTTO_2000"
	ErrCodeDuplicateNumber    ErrorCode = "LOTTO_2001"
	ErrCodeNumberOutOfRange   ErrorCode = "LOTTO_2002"
	ErrCodeBonusOutOfRange    ErrorCode = "LOTTO_2003"
	ErrCodeBonusDuplicate     ErrorCode = "LOTTO_2004"
	ErrCodeInvalidCount       ErrorCode = "LOTTO_2005"

	// 输入错误 (3000-3999)
	ErrCodeAmountNotNumber    ErrorCode = "LOTTO_3000"
	ErrCodeAmountTooSmall     ErrorCode = "LOTTO_3001"
	ErrCodeAmountNotDivisible ErrorCode = "LOTTO_3002"
	ErrCodeInputClosed        ErrorCode = "LOTTO_3003"
	ErrCodeAmountTooLarge     ErrorCode = "LOTTO_3004"

	// 计算错误 (4000-4999)
	ErrCodeZeroAmountSpent     ErrorCode = "LOTTO_4000"
	ErrCodeNegativeAmountSpent ErrorCode = "LOTTO_4001"
)

// ErrorKind groups error codes by how a caller is expected to react.
type ErrorKind string

const (
	// KindValidation marks an entity that violates a structural invariant
	KindValidation ErrorKind = "validation"
	// KindInput marks external text that could not be turned into a value
	KindInput ErrorKind = "input"
	// KindDivision marks a rate computed against a non-positive spend
	KindDivision ErrorKind = "division"
	// KindConfig marks an invalid configuration
	KindConfig ErrorKind = "config"
	// KindSystem marks everything else
	KindSystem ErrorKind = "system"
)

// LottoError 带错误码的错误类型
type LottoError struct {
	Code    ErrorCode `json:"code"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error 实现 error 接口
func (e *LottoError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Reason returns the human readable reason without the code prefix.
func (e *LottoError) Reason() string { return e.Message }

// Unwrap 实现 errors.Unwrap 接口
func (e *LottoError) Unwrap() error { return e.Cause }

// Is 实现 errors.Is 接口, 按错误码比较
func (e *LottoError) Is(target error) bool {
	if t, ok := target.(*LottoError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetails returns a copy of e carrying details.
func (e *LottoError) WithDetails(details string) *LottoError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy of e wrapping cause.
func (e *LottoError) WithCause(cause error) *LottoError {
	c := *e
	c.Cause = cause
	return &c
}

// NewError 创建新的错误
func NewError(code ErrorCode, kind ErrorKind, message string) *LottoError {
	return &LottoError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// 预定义的错误实例
var (
	// 系统级错误
	ErrSystemError   = NewError(ErrCodeSystem, KindSystem, "system error occurred")
	ErrConfigInvalid = NewError(ErrCodeConfigInvalid, KindConfig, "configuration is invalid")
	ErrRandomSource  = NewError(ErrCodeRandomSource, KindSystem, "random source failed")

	// 校验错误
	ErrInvalidNumberCount = NewError(ErrCodeInvalidNumberCount, KindValidation, "must contain exactly 6 numbers")
	ErrDuplicateNumber    = NewError(ErrCodeDuplicateNumber, KindValidation, "numbers must be unique")
	ErrNumberOutOfRange   = NewError(ErrCodeNumberOutOfRange, KindValidation, "numbers must be between 1 and 45")
	ErrBonusOutOfRange    = NewError(ErrCodeBonusOutOfRange, KindValidation, "bonus number must be between 1 and 45")
	ErrBonusDuplicate     = NewError(ErrCodeBonusDuplicate, KindValidation, "bonus number must not duplicate a winning number")
	ErrInvalidCount       = NewError(ErrCodeInvalidCount, KindValidation, "invalid count: must be greater than 0")

	// 输入错误
	ErrAmountNotNumber    = NewError(ErrCodeAmountNotNumber, KindInput, "purchase amount must be a number")
	ErrAmountTooSmall     = NewError(ErrCodeAmountTooSmall, KindInput, "minimum purchase amount is 1000")
	ErrAmountNotDivisible = NewError(ErrCodeAmountNotDivisible, KindInput, "purchase amount must be divisible by 1000")
	ErrInputClosed        = NewError(ErrCodeInputClosed, KindInput, "input closed before a valid value was read")
	ErrAmountTooLarge     = NewError(ErrCodeAmountTooLarge, KindInput, "purchase amount exceeds the ticket limit")

	// 计算错误
	ErrZeroAmountSpent     = NewError(ErrCodeZeroAmountSpent, KindDivision, "amount spent must not be zero")
	ErrNegativeAmountSpent = NewError(ErrCodeNegativeAmountSpent, KindDivision, "amount spent must not be negative")
)

// KindOf reports the kind of err, or "" when err is not a *LottoError.
func KindOf(err error) ErrorKind {
	var lottoErr *LottoError
	if errors.As(err, &lottoErr) {
		return lottoErr.Kind
	}
	return ""
}

// IsValidationError reports whether err is an entity validation failure.
func IsValidationError(err error) bool { return KindOf(err) == KindValidation }

// IsInputError reports whether err came from parsing external text.
func IsInputError(err error) bool { return KindOf(err) == KindInput }

// IsDivisionError reports whether err is a rate-of-return division failure.
func IsDivisionError(err error) bool { return KindOf(err) == KindDivision }

// IsRetryableInput reports whether the console layer should prompt again after err.
func IsRetryableInput(err error) bool {
	switch KindOf(err) {
	case KindValidation, KindInput:
		return !errors.Is(err, ErrInputClosed)
	}
	return false
}

// ReasonOf returns the bare reason of a *LottoError, or err.Error() otherwise.
func ReasonOf(err error) string {
	var lottoErr *LottoError
	if errors.As(err, &lottoErr) {
		return lottoErr.Reason()
	}
	return err.Error()
}
