package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "当前角色无权执行该操作",
	ErrTooManyRequests:  "请求频率过高",
	ErrConflict:         "操作与当前状态冲突",
	ErrForbiddenField:   "该字段由服务维护，不允许直接修改",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "用户已存在",
	ErrUserPasswordIncorrect: "用户密码错误",

	// 房间相关错误码
	ErrRoomNotFound:    "房间不存在",
	ErrRoomNumberTaken: "房间号已被占用",
	ErrRoomFull:        "房间已满员",
	ErrRoomOccupied:    "房间仍有住户，无法操作",

	// 租客相关错误码
	ErrTenantNotFound:        "租客不存在",
	ErrTenantAlreadyAssigned: "租客已分配房间，请先退房",
	ErrTenantForbiddenField:  "该字段由服务维护，不允许直接修改",
	ErrTenantStillAssigned:   "租客尚未退房，无法归档",

	// 账务相关错误码
	ErrPaymentNotFound:      "缴费记录不存在",
	ErrPaymentInvalidAmount: "缴费金额必须大于0",
	ErrAssignConflict:       "分配冲突，请稍后重试",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",

	// 维修相关错误码
	ErrTicketNotFound: "维修工单不存在",
	ErrTicketClosed:   "维修工单已关闭",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,
	ErrConflict:         StatusConflict,
	ErrForbiddenField:   StatusBadRequest,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,

	// 房间相关错误码
	ErrRoomNotFound:    StatusNotFound,
	ErrRoomNumberTaken: StatusConflict,
	ErrRoomFull:        StatusConflict,
	ErrRoomOccupied:    StatusConflict,

	// 租客相关错误码
	ErrTenantNotFound:        StatusNotFound,
	ErrTenantAlreadyAssigned: StatusConflict,
	ErrTenantForbiddenField:  StatusBadRequest,
	ErrTenantStillAssigned:   StatusConflict,

	// 账务相关错误码
	ErrPaymentNotFound:      StatusNotFound,
	ErrPaymentInvalidAmount: StatusBadRequest,
	ErrAssignConflict:       StatusConflict,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 维修相关错误码
	ErrTicketNotFound: StatusNotFound,
	ErrTicketClosed:   StatusConflict,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
