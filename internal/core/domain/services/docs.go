// Package services contains stateless domain services. The Tariff service
// quotes the billing cost of a shipment from its intake parameters.
package services
