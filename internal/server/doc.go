// Package server provides HTTP routing, middleware, and handlers for the song API.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] added with Use wraps the whole mux, first added outermost, so requests that match no route
// still pass through logging and the key gate.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Authorization
//
// Authorization happens in two steps:
//   - [Gate] runs for every path under the protected prefix. A missing or unknown x-api-key is rejected with 403
//     "Invalid API key"; otherwise the key's capability is stored in the request context.
//   - [RequireCapability] wraps each endpoint and rejects keys whose capability differs from the one the endpoint
//     needs with 403 "Unauthorized API key".
//
// The allow_bypass setting lets requests that carry no key at all through both steps. It exists for manual browser
// testing and is off unless configured.
//
// # Endpoints
//
//	GET /                                  landing page (no key)
//	GET /health                            liveness and song count (no key)
//	GET {prefix}/all/songs/                every song, access_all
//	GET {prefix}/access/songs/?title=...   first song whose title matches ignoring case, access_single
//
// Errors are JSON objects with a single "detail" field.
//
// # Handler Interface
//
// Endpoint groups implement the [Handler] interface, returning their [Route] list
// so route definitions stay next to the handler implementation.
package server
