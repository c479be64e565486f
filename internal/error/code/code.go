package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 当前角色无权执行该操作.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrConflict - 409: 操作与当前状态冲突.
	ErrConflict
	// ErrForbiddenField - 400: 尝试直接写入服务托管字段.
	ErrForbiddenField
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 用户已存在.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 用户密码错误.
	ErrUserPasswordIncorrect
)

// 房间相关错误码 (102xxx).
const (
	// ErrRoomNotFound - 404: 房间不存在.
	ErrRoomNotFound int = iota + 102000
	// ErrRoomNumberTaken - 409: 房间号已被占用.
	ErrRoomNumberTaken
	// ErrRoomFull - 409: 房间已满员.
	ErrRoomFull
	// ErrRoomOccupied - 409: 房间仍有住户.
	ErrRoomOccupied
)

// 租客相关错误码 (103xxx).
const (
	// ErrTenantNotFound - 404: 租客不存在.
	ErrTenantNotFound int = iota + 103000
	// ErrTenantAlreadyAssigned - 409: 租客已分配房间.
	ErrTenantAlreadyAssigned
	// ErrTenantForbiddenField - 400: 尝试直接修改服务托管字段.
	ErrTenantForbiddenField
	// ErrTenantStillAssigned - 409: 租客尚未退房.
	ErrTenantStillAssigned
)

// 账务相关错误码 (104xxx).
const (
	// ErrPaymentNotFound - 404: 缴费记录不存在.
	ErrPaymentNotFound int = iota + 104000
	// ErrPaymentInvalidAmount - 400: 缴费金额无效.
	ErrPaymentInvalidAmount
	// ErrAssignConflict - 409: 分配冲突，请稍后重试.
	ErrAssignConflict
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// 维修相关错误码 (106xxx).
const (
	// ErrTicketNotFound - 404: 维修工单不存在.
	ErrTicketNotFound int = iota + 106000
	// ErrTicketClosed - 409: 维修工单已关闭.
	ErrTicketClosed
)
