package heroesdk

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the JSON body of every error the API writes.
type ErrorResponse struct {
	// Error is the error code (e.g., "invalid_request", "hero_not_found")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`
}

// ============================================================================
// Heroes
// ============================================================================

// Hero is a hero as served by /api/heroes.
type Hero struct {
	ID   int    `json:"id"   example:"11"`
	Name string `json:"name" example:"Dr Nice"`
}

// CreateHeroRequest is the body of POST /api/heroes. The server assigns the id.
type CreateHeroRequest struct {
	Name string `json:"name" example:"Windstorm"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains the status of individual dependencies (readyz only)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Store indicates the hero store status
	Store string `json:"store"`
}
