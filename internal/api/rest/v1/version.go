package v1

// BasePath is the common prefix for all API routes.
const BasePath = "/api"
