package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cohera-backend/internal/models"
	"cohera-backend/internal/session"
	"cohera-backend/internal/storage"
)

// CookieName carries the opaque session token. The token is the only thing
// the client holds; identity lives server-side in the session store.
const CookieName = "cohera_session"

// CredentialStore is the slice of storage the auth gate needs.
type CredentialStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	RegisterTenant(ctx context.Context, companyName, fullName, email, passwordHash string) (*models.Organization, *models.User, error)
}

// Auditor receives account activity notifications. May be nil.
type Auditor interface {
	TenantRegistered(orgID, userID int64)
	LoginSucceeded(orgID, userID int64)
	LoggedOut(orgID, userID int64)
}

type Handler struct {
	creds    CredentialStore
	sessions session.Store
	audit    Auditor
	ttl      time.Duration
}

func NewHandler(creds CredentialStore, sessions session.Store, audit Auditor, ttl time.Duration) *Handler {
	return &Handler{creds: creds, sessions: sessions, audit: audit, ttl: ttl}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// Login authenticates a user and establishes a session
// @Summary User login
// @Description Verifies email and password and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]string "Login successful"
// @Failure 400 {object} map[string]string "Missing email or password"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	user, err := h.creds.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("ERROR login lookup: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed.")
		return
	}

	// Unknown email and wrong password produce the same response, so the
	// endpoint cannot be used to probe which accounts exist.
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password.")
		return
	}

	token, err := h.sessions.Create(r.Context(), models.Session{
		UserID:    user.ID,
		OrgID:     user.OrgID,
		Role:      user.Role,
		FullName:  user.FullName,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Printf("ERROR create session: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Login failed.")
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.ttl))
	if h.audit != nil {
		h.audit.LoginSucceeded(user.OrgID, user.ID)
	}
	writeMessage(w, http.StatusOK, "Login successful.")
}

// Register provisions a new organization and its first admin user
// @Summary Register a tenant
// @Description Creates an organization and its admin account atomically
// @Tags auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "Account details"
// @Success 201 {object} map[string]string "Account created"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 500 {object} map[string]string "Conflict or store failure"
// @Router /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	if req.FullName == "" || req.CompanyName == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("ERROR hash password: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Could not create account.")
		return
	}

	org, user, err := h.creds.RegisterTenant(r.Context(), req.CompanyName, req.FullName, req.Email, string(hash))
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			log.Printf("WARN registration conflict: email already registered")
		} else {
			log.Printf("ERROR register tenant: %v", err)
		}
		writeMessage(w, http.StatusInternalServerError, "Could not create account.")
		return
	}

	if h.audit != nil {
		h.audit.TenantRegistered(org.ID, user.ID)
	}
	writeMessage(w, http.StatusCreated, "Account created successfully.")
}

// Logout destroys the current session
// @Summary User logout
// @Description Invalidates the session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out"
// @Router /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		sess, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil && !errors.Is(err, session.ErrSessionNotFound) {
			log.Printf("WARN logout lookup: %v", err)
		}

		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			log.Printf("WARN destroy session: %v", err)
		}

		if sess != nil && h.audit != nil {
			h.audit.LoggedOut(sess.OrgID, sess.UserID)
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	writeMessage(w, http.StatusOK, "Logged out.")
}

func (h *Handler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
