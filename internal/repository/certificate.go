package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carbontrade/carboncert/internal/apperrors"
	"github.com/carbontrade/carboncert/internal/models"
)

// certificateColumns selects a certificate joined with its owner's minimal fields.
const certificateColumns = `
	SELECT c.id, c.country, c.status, u.id, u.email, u.name
	  FROM carbon_certificates c
	  LEFT JOIN users u ON u.id = c.owner_id
`

// PostgresCertificateRepository implements carbon-certificate persistence
// against a PostgreSQL database.
type PostgresCertificateRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresCertificateRepository creates a new PostgresCertificateRepository
// using the provided *sql.DB.
func NewPostgresCertificateRepository(db *sql.DB) *PostgresCertificateRepository {
	return &PostgresCertificateRepository{DB: db}
}

// scanCertificate reads one joined certificate row, folding the nullable
// owner columns into a *models.CertificateOwner.
func scanCertificate(s interface {
	Scan(dest ...any) error
}) (*models.CarbonCertificate, error) {
	var (
		cert       models.CarbonCertificate
		ownerID    sql.NullInt64
		ownerEmail sql.NullString
		ownerName  sql.NullString
	)
	if err := s.Scan(&cert.ID, &cert.Country, &cert.Status, &ownerID, &ownerEmail, &ownerName); err != nil {
		return nil, err
	}
	if ownerID.Valid {
		cert.Owner = &models.CertificateOwner{
			ID:    ownerID.Int64,
			Email: ownerEmail.String,
			Name:  ownerName.String,
		}
	}
	return &cert, nil
}

// ListByOwner fetches all certificates owned by the given user, with the
// owner's id, email, and name joined in.
func (r *PostgresCertificateRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.CarbonCertificate, error) {
	rows, err := r.DB.QueryContext(ctx, certificateColumns+` WHERE c.owner_id = $1 ORDER BY c.id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()
	return collectCertificates(rows)
}

// ListOwnerless fetches all certificates that have no owner.
func (r *PostgresCertificateRepository) ListOwnerless(ctx context.Context) ([]models.CarbonCertificate, error) {
	rows, err := r.DB.QueryContext(ctx, certificateColumns+` WHERE c.owner_id IS NULL ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("ListOwnerless: %w", err)
	}
	defer rows.Close()
	return collectCertificates(rows)
}

func collectCertificates(rows *sql.Rows) ([]models.CarbonCertificate, error) {
	certificates := []models.CarbonCertificate{}
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		certificates = append(certificates, *cert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return certificates, nil
}

// GetByID fetches a single certificate by id with its owner joined in.
// Returns apperrors.ErrCertificateNotFound when no row matches.
func (r *PostgresCertificateRepository) GetByID(ctx context.Context, id int64) (*models.CarbonCertificate, error) {
	cert, err := scanCertificate(r.DB.QueryRowContext(ctx, certificateColumns+` WHERE c.id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return cert, nil
}

// Create inserts a new certificate row as given and returns the stored
// record with its owner joined in. ownerID may be nil for an ownerless
// certificate.
func (r *PostgresCertificateRepository) Create(ctx context.Context, country string, status models.CertificateStatus, ownerID *int64) (*models.CarbonCertificate, error) {
	var id int64
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO carbon_certificates (country, status, owner_id) VALUES ($1, $2, $3) RETURNING id`,
		country, string(status), ownerID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert certificate: %w", err)
	}
	return r.GetByID(ctx, id)
}

// TransferOwner conditionally reassigns a certificate in a single update:
// the row changes only if it exists and is currently owned by requesterID.
// The WHERE clause is the sole authorization gate, so concurrent transfers
// of the same certificate cannot both succeed. Zero affected rows yields
// apperrors.ErrCertificateNotFound.
func (r *PostgresCertificateRepository) TransferOwner(ctx context.Context, requesterID, certificateID, newOwnerID int64) (*models.CarbonCertificate, error) {
	res, err := r.DB.ExecContext(
		ctx,
		`UPDATE carbon_certificates SET owner_id = $1, status = $2 WHERE id = $3 AND owner_id = $4`,
		newOwnerID, string(models.StatusTransferred), certificateID, requesterID,
	)
	if err != nil {
		return nil, fmt.Errorf("transfer certificate: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrCertificateNotFound
	}
	return r.GetByID(ctx, certificateID)
}
