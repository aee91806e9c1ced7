package leave

import "context"

// LeaveService defines business logic for leave requests.
type LeaveService interface {
	Submit(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	Get(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter ListFilter) (ListRequestResponse, error)

	// Approve and Deny move a Pending request to its final status.
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Deny(ctx context.Context, id string) (RequestResponse, error)

	// ConvertToUnpaid turns an Approved Paid (Made Up) request into Unpaid.
	ConvertToUnpaid(ctx context.Context, id string) (RequestResponse, error)

	Delete(ctx context.Context, id string) error
}
