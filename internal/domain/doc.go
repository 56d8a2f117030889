// Package domain contains the value objects exchanged between the content
// service and its callers: trend keywords, content plans with their grounding
// citations and places, thumbnail sizes, coordinates and the result mode that
// tells a caller whether it received live, demo or fallback data.
//
// Every type here is request-scoped. Values are created by one service call
// and replaced by the next; nothing carries identity across requests.
package domain
