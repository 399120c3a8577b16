// Package patients contains the enrolled patient entity and the contracts
// for enrollment, listing and ownership-scoped access.
package patients
