// Package catalogavailability lists catalog items with their copies and availability.
//
// Availability is computed from the copies on every query.
package catalogavailability
