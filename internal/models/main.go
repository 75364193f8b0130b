// Package models defines the core data structures for users and carbon certificates.
package models

// User represents a registered account.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Email is the unique login email of the user.
	Email string `json:"email"`
	// Name is the display name of the user.
	Name string `json:"name"`
	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized back to callers.
	PasswordHash string `json:"-"`
}

// CertificateStatus defines the set of valid certificate states.
type CertificateStatus string

const (
	// StatusAvailable marks a certificate that has no owner yet.
	StatusAvailable CertificateStatus = "available"
	// StatusOwned marks a certificate held by its original owner.
	StatusOwned CertificateStatus = "owned"
	// StatusTransferred marks a certificate whose ownership has changed hands.
	StatusTransferred CertificateStatus = "transferred"
)

// Valid reports whether s is one of the known certificate statuses.
func (s CertificateStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOwned, StatusTransferred:
		return true
	}
	return false
}

// CertificateOwner is the minimal owner projection joined onto certificate reads.
type CertificateOwner struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CarbonCertificate represents a carbon certificate record.
// Owner is nil for ownerless certificates and serializes as null.
type CarbonCertificate struct {
	// ID is the unique identifier for the certificate.
	ID int64 `json:"id"`
	// Country is the country the certificate was issued for.
	Country string `json:"country"`
	// Status is the current lifecycle state of the certificate.
	Status CertificateStatus `json:"status"`
	// Owner holds the joined owner fields, or nil when unowned.
	Owner *CertificateOwner `json:"owner"`
}
