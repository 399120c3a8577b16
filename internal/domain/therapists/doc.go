// Package therapists contains the therapist account entity, the request
// identity derived from it, and the contracts for account management.
package therapists
