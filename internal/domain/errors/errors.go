package errors

import (
	"net/http"

	"catalog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Restaurant errors
var (
	ErrCoordinateRequired = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_001",
		"위도와 경도는 필수입니다.",
		"",
	)

	ErrInvalidLatitudeRange = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_002",
		"위도는 -90도에서 90도 사이여야 합니다.",
		"",
	)

	ErrInvalidLongitudeRange = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_003",
		"경도는 -180도에서 180도 사이여야 합니다.",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_004",
		"유효한 좌표가 필요합니다.",
		"",
	)

	ErrRestaurantNameRequired = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_010",
		"레스토랑명은 필수입니다.",
		"",
	)

	ErrOwnerRequired = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_011",
		"소유자 정보는 필수입니다.",
		"",
	)

	ErrInvalidAddress = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_012",
		"유효한 주소가 필요합니다.",
		"",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_013",
		"레스토랑을 찾을 수 없습니다.",
		"",
	)

	ErrRestaurantAlreadyDeleted = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_014",
		"이미 삭제된 레스토랑입니다.",
		"",
	)

	ErrCannotModifyMenuWhileOpen = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_015",
		"영업 중에는 메뉴를 수정할 수 없습니다.",
		"",
	)

	ErrDuplicateRestaurantName = NewBaseError(
		http.StatusConflict,
		"RESTAURANT_016",
		"이미 같은 이름의 레스토랑이 존재합니다.",
		"",
	)

	ErrRestaurantOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"RESTAURANT_017",
		"레스토랑에 대한 권한이 없습니다.",
		"",
	)

	ErrInvalidRestaurantStatus = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_018",
		"유효하지 않은 레스토랑 상태입니다.",
		"",
	)

	ErrRestaurantCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_020",
		"레스토랑 카테고리를 찾을 수 없습니다.",
		"",
	)

	ErrDuplicateCategoryCode = NewBaseError(
		http.StatusConflict,
		"RESTAURANT_021",
		"이미 사용 중인 카테고리 코드입니다.",
		"",
	)

	ErrOperatingDayNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_030",
		"운영시간 정보를 찾을 수 없습니다.",
		"",
	)

	ErrInvalidOperatingTime = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_031",
		"유효하지 않은 운영시간입니다.",
		"",
	)

	ErrBreakTimeOutOfOperatingTime = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_032",
		"브레이크 타임은 운영시간 내에 있어야 합니다.",
		"",
	)

	ErrStatisticsUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"RESTAURANT_040",
		"통계 업데이트에 실패했습니다.",
		"",
	)

	ErrInvalidReviewRating = NewBaseError(
		http.StatusBadRequest,
		"RESTAURANT_041",
		"평점은 0에서 5 사이여야 합니다.",
		"",
	)
)

// Menu errors
var (
	ErrMenuNameRequired = NewBaseError(
		http.StatusBadRequest,
		"MENU_001",
		"메뉴명은 필수입니다.",
		"",
	)

	ErrMenuPriceRequired = NewBaseError(
		http.StatusBadRequest,
		"MENU_002",
		"메뉴 가격은 필수입니다.",
		"",
	)

	ErrInvalidMenuPrice = NewBaseError(
		http.StatusBadRequest,
		"MENU_003",
		"메뉴 가격은 0원 이상이어야 합니다.",
		"",
	)

	ErrMenuNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_004",
		"메뉴를 찾을 수 없습니다.",
		"",
	)

	ErrMenuAlreadyDeleted = NewBaseError(
		http.StatusBadRequest,
		"MENU_005",
		"이미 삭제된 메뉴입니다.",
		"",
	)

	ErrCategoryNameRequired = NewBaseError(
		http.StatusBadRequest,
		"MENU_020",
		"카테고리명은 필수입니다.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_021",
		"카테고리를 찾을 수 없습니다.",
		"",
	)

	ErrInvalidCategoryDepth = NewBaseError(
		http.StatusBadRequest,
		"MENU_022",
		"카테고리 계층은 3단계를 초과할 수 없습니다.",
		"",
	)

	ErrCircularCategoryReference = NewBaseError(
		http.StatusBadRequest,
		"MENU_023",
		"카테고리 순환 참조가 발생했습니다.",
		"",
	)

	ErrOptionGroupNameRequired = NewBaseError(
		http.StatusBadRequest,
		"MENU_040",
		"옵션 그룹명은 필수입니다.",
		"",
	)

	ErrInvalidMaxSelection = NewBaseError(
		http.StatusBadRequest,
		"MENU_041",
		"최대 선택 가능 수는 최소 선택 수보다 작을 수 없습니다.",
		"",
	)

	ErrOptionGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_042",
		"옵션 그룹을 찾을 수 없습니다.",
		"",
	)

	ErrOptionNameRequired = NewBaseError(
		http.StatusBadRequest,
		"MENU_060",
		"옵션명은 필수입니다.",
		"",
	)

	ErrInvalidOptionPrice = NewBaseError(
		http.StatusBadRequest,
		"MENU_061",
		"옵션 가격은 음수일 수 없습니다.",
		"",
	)

	ErrOptionNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_062",
		"옵션을 찾을 수 없습니다.",
		"",
	)

	ErrRequiredOptionNotSelected = NewBaseError(
		http.StatusBadRequest,
		"MENU_063",
		"필수 옵션을 선택해야 합니다.",
		"",
	)
)

// General errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력 데이터 검증에 실패했습니다.",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"데이터베이스 트랜잭션에 실패했습니다.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"시스템 내부 오류입니다.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"인증이 필요합니다.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"접근이 거부되었습니다.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"리소스를 찾을 수 없습니다.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"리소스 충돌이 발생했습니다.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "데이터베이스 실행에 실패했습니다."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
