// Package discogs provides access to the upstream Discogs catalog API.
//
// The Client fetches one canonical release document by external id. A non-2xx
// response is not an error: it is logged with status and headers, and the
// caller receives a nil document meaning "no data available". Only transport
// and decode failures surface as errors.
package discogs
