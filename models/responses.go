package models

// Response is the uniform JSON envelope returned by every API endpoint.
// The HTTP status code of the response always mirrors the Status field.
type Response struct {
	// Success is true for 2xx outcomes, false otherwise.
	Success bool `json:"success"`

	// Status duplicates the HTTP status code inside the body so that
	// clients reading only the payload can still classify the outcome.
	Status int `json:"status"`

	// Message is a short human-readable summary of the outcome.
	Message string `json:"message"`

	// Data carries the endpoint-specific payload, when any.
	Data any `json:"data,omitempty"`
}

// RouteInfo describes a single registered API route. The route registry is
// assembled statically at startup and served by the docs endpoint; no live
// router introspection is involved.
type RouteInfo struct {
	// Path is the route pattern, e.g. "/api/v1/listings/{id}".
	Path string `json:"path"`

	// Methods lists the HTTP methods the route answers to.
	Methods []string `json:"methods"`

	// Description is a one-line summary of what the route does.
	Description string `json:"description"`
}

// APIDocs is the payload of the docs endpoint.
type APIDocs struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Routes  []RouteInfo `json:"routes"`
}
