package repositories

import (
	"database/sql"
	"time"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
)

// UserDocument holds the financing document URLs a user uploaded through
// the (external) upload service. This backend only reads them.
type UserDocument struct {
	KTPURL     sql.NullString
	NPWPURL    sql.NullString
	PayslipURL sql.NullString
	CreatedAt  time.Time
}

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID loads a user with their risk profile when present.
func (r UserRepository) GetByID(userID string) (models.User, error) {
	var u models.User
	var riskID sql.NullInt64
	var riskName sql.NullString
	err := r.db().QueryRow(`
		SELECT u.id, u.name, u.email, u.phone_number, u.created_at, u.updated_at, pr.id, pr.name
		FROM users u
		LEFT JOIN profile_risks pr ON pr.id = u.profile_risk_id
		WHERE u.id = ?
	`, userID).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.CreatedAt, &u.UpdatedAt, &riskID, &riskName)
	if err != nil {
		return models.User{}, err
	}
	if riskID.Valid {
		u.ProfileRisk = &models.ProfileRisk{ID: int(riskID.Int64), Name: riskName.String}
	}
	return u, nil
}

// GetCredentialsByEmail is used by the login handler only.
func (r UserRepository) GetCredentialsByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, email, phone_number, password_hash FROM users WHERE email = ?
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &hash)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) CountByEmailOrPhone(email, phone string) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM users WHERE email = ? OR phone_number = ?
	`, email, phone).Scan(&n)
	return n, err
}

func (r UserRepository) Create(id, name, email, phone, passwordHash string, now time.Time) error {
	_, err := r.db().Exec(`
		INSERT INTO users (id, name, email, phone_number, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, name, email, phone, passwordHash, now, now)
	return err
}

// GetDocument returns the user's uploaded documents, or sql.ErrNoRows when
// they have not uploaded anything yet.
func (r UserRepository) GetDocument(userID string) (UserDocument, error) {
	var d UserDocument
	err := r.db().QueryRow(`
		SELECT ktp_url, npwp_url, payslip_url, created_at FROM user_documents WHERE user_id = ?
	`, userID).Scan(&d.KTPURL, &d.NPWPURL, &d.PayslipURL, &d.CreatedAt)
	return d, err
}

// SalaryByPhone reads the core-banking monthly in-hand salary for a phone
// number. Missing rows report zero; financing views treat salary as
// best-effort enrichment.
func (r UserRepository) SalaryByPhone(phone string) (int64, error) {
	var salary sql.NullInt64
	err := r.db().QueryRow(`
		SELECT monthly_inhand_salary FROM core_banking_users WHERE phone_number = ? LIMIT 1
	`, phone).Scan(&salary)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return salary.Int64, nil
}
