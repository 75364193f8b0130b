package service

import (
	"context"

	"github.com/carbontrade/carboncert/internal/apperrors"
	"github.com/carbontrade/carboncert/internal/models"
)

// CertificateRepository defines the persistence operations required by the
// certificate service.
type CertificateRepository interface {
	// ListByOwner fetches all certificates owned by the given user.
	ListByOwner(ctx context.Context, ownerID int64) ([]models.CarbonCertificate, error)
	// ListOwnerless fetches all certificates that have no owner.
	ListOwnerless(ctx context.Context) ([]models.CarbonCertificate, error)
	// Create inserts a new certificate row as given.
	Create(ctx context.Context, country string, status models.CertificateStatus, ownerID *int64) (*models.CarbonCertificate, error)
	// TransferOwner conditionally reassigns a certificate in a single
	// atomic update gated on the current owner matching requesterID.
	// Zero matched rows must surface as apperrors.ErrCertificateNotFound.
	TransferOwner(ctx context.Context, requesterID, certificateID, newOwnerID int64) (*models.CarbonCertificate, error)
}

// CertificateService implements carbon-certificate listing, creation, and
// ownership transfer.
type CertificateService struct {
	repo CertificateRepository
}

// NewCertificateService constructs a CertificateService with the provided repository.
func NewCertificateService(repo CertificateRepository) *CertificateService {
	return &CertificateService{repo: repo}
}

// ListMine returns all certificates owned by the given user, each joined
// with the owner's id, name, and email.
func (s *CertificateService) ListMine(ctx context.Context, userID int64) ([]models.CarbonCertificate, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// ListOwnerless returns all certificates without an owner.
func (s *CertificateService) ListOwnerless(ctx context.Context) ([]models.CarbonCertificate, error) {
	return s.repo.ListOwnerless(ctx)
}

// Create validates the input and inserts a new certificate as given. The
// supplied owner is not checked against the caller's identity.
func (s *CertificateService) Create(ctx context.Context, country string, status models.CertificateStatus, ownerID *int64) (*models.CarbonCertificate, error) {
	var messages []string
	if country == "" {
		messages = append(messages, "country should not be empty")
	}
	if !status.Valid() {
		messages = append(messages, "status must be on of this values: available, owned, transferred.")
	}
	if len(messages) > 0 {
		return nil, apperrors.NewValidation(messages...)
	}
	return s.repo.Create(ctx, country, status, ownerID)
}

// TransferOwnership moves certificateID from requesterID to newOwnerID.
// The repository performs the ownership check and the mutation in one
// conditional update, so a losing concurrent transfer observes
// apperrors.ErrCertificateNotFound rather than partial state.
func (s *CertificateService) TransferOwnership(ctx context.Context, requesterID, certificateID, newOwnerID int64) (*models.CarbonCertificate, error) {
	return s.repo.TransferOwner(ctx, requesterID, certificateID, newOwnerID)
}
