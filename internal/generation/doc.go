// Package generation provides the provider-neutral boundary between the
// content service and a hosted generative AI backend (Gemini in production).
//
// It owns three concerns:
//
// 1. Request building:
//   - Renders natural-language instructions from prompt templates
//   - Declares the output schema and the required fields of each capability
//   - Attaches grounding tools (web search always, place search only when a
//     coordinate is known)
//
// 2. Response extraction:
//   - Decodes schema-constrained JSON bodies into domain values
//   - Partitions grounding chunks into citations and places
//   - Finds the first inline image part and encodes it as a data URI
//
// 3. Error taxonomy:
//   - ErrCredentialAbsent, ErrCallFailure and ErrExtractionFailure classify
//     every way a live call can fail to produce a result
//
// Backends implement the Generator and GeneratorSource interfaces; nothing in
// this package talks to the network.
package generation
