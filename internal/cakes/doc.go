// Package cakes fetches and decodes the cake catalogue.
//
// # Overview
//
// The catalogue is a single JSON document served from a fixed URL:
//
//	[{"title": "Lemon cheesecake", "desc": "A cheesecake made of lemon", "image": "https://..."}]
//
// Client performs one GET and returns the raw body; Parse turns that body
// into Records. Client.Fetch chains the two.
//
// # Errors
//
// Failures are classified so callers can tell them apart:
//
//   - *NetworkError: the request could not be sent, the body could not be
//     read, or the server answered with a non-2xx status (Status is set)
//   - ErrEmptyResponse: the server answered 2xx with an empty body
//   - *DecodeError: the body is not a JSON array of objects carrying
//     string "title", "desc" and "image" keys
//
// Parse never returns a partial list. One bad element fails the whole
// decode.
//
// # Requests
//
// There are no retries and no backoff. The request honours the context
// and the client timeout (see WithTimeout).
package cakes
