// Package capacity contains the bounded Resource entity backing the warehouse
// and the delivery vehicle. Both are pools of identical slots that parcels
// occupy and release as the lifecycle moves them through custody states.
package capacity
