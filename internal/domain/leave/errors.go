package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrIdentityMismatch      = errors.New("session identity does not match the employee on the request")
)
