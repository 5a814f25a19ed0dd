// Package services implements the driving port interfaces.
// Services contain the core pipeline logic - chunking, fusion, routing,
// index building - and orchestrate calls to driven ports (adapters).
package services
