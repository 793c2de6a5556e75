package company

import "time"

// Company is a tenant. Every non-SuperAdmin user belongs to exactly one.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
