// Package services implements the driving port interfaces.
// Services contain the core normalisation and ranking logic and
// orchestrate calls to driven ports (adapters).
//
// Each pipeline runs synchronously to completion: read the whole input,
// transform in memory, write outputs.
package services
