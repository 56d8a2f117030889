// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between browser clients and the
// content service, translating HTTP concerns to content operations.
//
// Content endpoints always answer 200 with a result tagged with its mode;
// only malformed requests are rejected with 4xx.
package api
