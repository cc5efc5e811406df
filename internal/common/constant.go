// Package common contains shared constants and sentinel errors used across
// storekeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "access_token"

// Roles known to the authorization layer.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
)
