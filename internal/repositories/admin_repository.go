package repositories

import (
	"database/sql"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID loads an admin with their branch. Returns sql.ErrNoRows when the
// id is unknown.
func (r AdminRepository) GetByID(adminID string) (models.Admin, error) {
	var a models.Admin
	var br models.Branch
	err := r.db().QueryRow(`
		SELECT a.id, a.name, a.email, a.branch_id, a.created_at, a.updated_at, br.id, br.name
		FROM admins a
		JOIN branches br ON br.id = a.branch_id
		WHERE a.id = ?
	`, adminID).Scan(&a.ID, &a.Name, &a.Email, &a.BranchID, &a.CreatedAt, &a.UpdatedAt, &br.ID, &br.Name)
	if err != nil {
		return models.Admin{}, err
	}
	a.Branch = &br
	return a, nil
}

// GetCredentialsByEmail is used by the login handler only.
func (r AdminRepository) GetCredentialsByEmail(email string) (models.Admin, string, error) {
	var a models.Admin
	var hash string
	err := r.db().QueryRow(`
		SELECT id, name, email, branch_id, password_hash FROM admins WHERE email = ?
	`, email).Scan(&a.ID, &a.Name, &a.Email, &a.BranchID, &hash)
	if err != nil {
		return models.Admin{}, "", err
	}
	return a, hash, nil
}
