package dto

// ErrorCode is the stable numeric taxonomy clients switch on. HTTP status
// codes are advisory; the code is the contract.
type ErrorCode int

const (
	CodeOK                   ErrorCode = 0
	CodeInternal             ErrorCode = 1
	CodeUserUnauthorized     ErrorCode = 2
	CodeRecordNotFound       ErrorCode = 3
	CodeRecordAlreadyExists  ErrorCode = 4
	CodeStorageError         ErrorCode = 5
	CodeNotEnoughPermissions ErrorCode = 6
	CodeInvalidRequest       ErrorCode = 7
)

type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
