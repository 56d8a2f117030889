// Package content is the single entry point for trend discovery, content plan
// generation and thumbnail generation.
//
// Every operation returns a renderable result. When no credential is selected
// the result carries demo data and ModeDemo; when a live call or its
// extraction fails it carries fallback data and ModeFallback. The cause is
// kept on the result's Err field for logging and tests but is never
// serialized.
package content
