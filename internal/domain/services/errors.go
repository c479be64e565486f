package services

import "errors"

// ErrorKind 区分服务层错误的类别，控制器据此映射错误码
type ErrorKind int

const (
	// KindValidation 输入不合法，未发生任何写入
	KindValidation ErrorKind = iota + 1
	// KindNotFound 引用的实体不存在
	KindNotFound
	// KindConflict 操作会破坏不变量（满员、重复房间号、重试耗尽等）
	KindConflict
	// KindForbiddenField 调用方尝试直接修改服务托管字段
	KindForbiddenField
	// KindAuthorization 角色无权执行该操作
	KindAuthorization
)

// ServiceError 携带错误类别的服务层错误
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewValidationError 创建参数验证错误
func NewValidationError(message string) error {
	return &ServiceError{Kind: KindValidation, Message: message}
}

// NewNotFoundError 创建实体不存在错误
func NewNotFoundError(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

// NewConflictError 创建不变量冲突错误
func NewConflictError(message string) error {
	return &ServiceError{Kind: KindConflict, Message: message}
}

// NewForbiddenFieldError 创建托管字段写入错误
func NewForbiddenFieldError(message string) error {
	return &ServiceError{Kind: KindForbiddenField, Message: message}
}

// NewAuthorizationError 创建越权操作错误
func NewAuthorizationError(message string) error {
	return &ServiceError{Kind: KindAuthorization, Message: message}
}

// KindOf 返回错误的类别，非服务层错误返回0
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
