package handlers

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/http/middleware"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func signToken(subjectID, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subjectID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func newUserID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.Name == "" || req.Email == "" || req.PhoneNumber == "" || len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "nama, email, no hp wajib diisi dan password minimal 8 karakter", nil)
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.CountByEmailOrPhone(req.Email, req.PhoneNumber)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal memeriksa user", err)
		return
	}
	if exists > 0 {
		RespondError(c, http.StatusConflict, "email atau no hp sudah terdaftar", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal meng-hash password", err)
		return
	}

	id, err := newUserID()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat id user", err)
		return
	}

	if err := repo.Create(id, req.Name, req.Email, req.PhoneNumber, string(hash), time.Now()); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"user": gin.H{
			"id":           id,
			"name":         req.Name,
			"email":        req.Email,
			"phone_number": req.PhoneNumber,
		},
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, hash, err := repositories.UserRepository{}.GetCredentialsByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "email atau password salah", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "gagal query user", err)
		}
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		RespondError(c, http.StatusUnauthorized, "email atau password salah", nil)
		return
	}

	token, err := signToken(user.ID, middleware.RoleUser)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"name":         user.Name,
			"email":        user.Email,
			"phone_number": user.PhoneNumber,
		},
	})
}

// POST /api/auth/admin/login
func AdminLogin(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	admin, hash, err := repositories.AdminRepository{}.GetCredentialsByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "email atau password salah", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "gagal query admin", err)
		}
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		RespondError(c, http.StatusUnauthorized, "email atau password salah", nil)
		return
	}

	token, err := signToken(admin.ID, middleware.RoleAdmin)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":        admin.ID,
			"name":      admin.Name,
			"email":     admin.Email,
			"branch_id": admin.BranchID,
		},
	})
}
