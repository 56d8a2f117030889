// Package gemini implements the generation.GeneratorSource and
// generation.Generator interfaces on top of Google's Gemini API.
//
// This package is an infrastructure adapter: it translates provider-neutral
// generation.Request values into genai calls and normalizes the responses
// back into generation.Response values, so nothing outside this package
// depends on the genai client library.
//
// Key components:
//
// 1. Source:
//   - Reads the currently selected key from a credential.KeyProvider
//   - Creates the genai client lazily, only once a key is present
//   - Replaces the cached client when a different key is selected
//
// 2. Generator:
//   - Translates schemas, grounding tools, retrieval location and image
//     options into a genai.GenerateContentConfig
//   - Issues exactly one GenerateContent call, bounded by an optional timeout
//   - Normalizes text, inline image parts and grounding metadata
//
// Transport and provider errors are wrapped with generation.ErrCallFailure;
// responses without a usable candidate are wrapped with
// generation.ErrExtractionFailure.
package gemini
