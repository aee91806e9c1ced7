package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or denied")
	ErrNotConvertible               = errors.New("only approved Paid (Made Up) requests can be converted to unpaid")
)
