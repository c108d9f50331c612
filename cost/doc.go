// Package cost defines the cost-function contract the tuner consumes: a
// callable mapping a configuration to a strictly-orderable Cost, which may
// instead signal that the configuration is infeasible.
package cost
