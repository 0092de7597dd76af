package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeAccessDenied = errors.New("employee records can only be viewed for your own record")
)
