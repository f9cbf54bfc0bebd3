package models

import "time"

// ResourceStatus is a closed set of resource request states
type ResourceStatus string

// Resource status values
const (
	ResourceRequested ResourceStatus = "requested"
	ResourceApproved  ResourceStatus = "approved"
	ResourceDelivered ResourceStatus = "delivered"
)

// Valid reports whether the status is one of the allowed values
func (s ResourceStatus) Valid() bool {
	switch s {
	case ResourceRequested, ResourceApproved, ResourceDelivered:
		return true
	}
	return false
}

// Resource represents a resource request
type Resource struct {
	ID          int64          `json:"id"`
	RequestedBy int64          `json:"requestedBy"`
	Name        string         `json:"name"`
	Quantity    int            `json:"quantity"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	Status      ResourceStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CreateResourceRequest represents a new resource request submission
type CreateResourceRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Location string `json:"location"`
}
