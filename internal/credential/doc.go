// Package credential tracks whether a usable generative backend credential is
// currently selected and delegates interactive selection to the host.
//
// The content service depends only on the Provider interface, so the absent
// and present branches can be exercised with a fixed-value provider in tests.
package credential
