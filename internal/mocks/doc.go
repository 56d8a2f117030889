// Package mocks provides centralized mock implementations for testing.
//
// The mocks cover the generation boundary (Generator, GeneratorSource) and
// the content service consumed by the HTTP handlers. Each mock has function
// fields for its methods, default return values, and mutex-guarded call
// tracking so tests can assert exactly what was sent across the boundary.
//
// Usage:
//
//	gen := mocks.NewMockGeneratorWithText(`[{"keyword":"탕후루"}]`)
//	source := mocks.NewMockGeneratorSource(gen)
//
//	// Use the source in the content service under test, then inspect
//	// gen.LastRequest() to verify which tools were attached.
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
