package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"elampillai/storefront/internal/domain"
	"elampillai/storefront/internal/xid"
)

// AdminEmail is the one address that signs in with admin rights.
const AdminEmail = "admin@elampillai.com"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthManager issues and verifies session tokens for the simulated sign-in
// flow. Accounts created through Register keep a bcrypt-hashed password and
// later logins verify against it; any other email signs in with whatever
// password it likes and gets a user synthesized from the address.
type AuthManager struct {
	mu       sync.RWMutex
	secret   []byte
	tokenTTL time.Duration
	clock    Clock
	accounts map[string]account
}

type account struct {
	passwordHash string
	user         domain.User
}

type sessionClaims struct {
	jwtlib.RegisteredClaims
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

func NewAuthManager(secret string, tokenTTL time.Duration, clock Clock) *AuthManager {
	if secret == "" {
		secret = "dev-change-me"
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &AuthManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		clock:    clock,
		accounts: make(map[string]account),
	}
}

// Authenticate resolves an email and password to a user. Registered accounts
// require the matching password; unknown emails always succeed and synthesize
// a user from the address.
func (a *AuthManager) Authenticate(email, password string) (domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: email required", ErrInvalidCredentials)
	}

	a.mu.RLock()
	acct, registered := a.accounts[email]
	a.mu.RUnlock()

	if registered {
		if bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(password)) != nil {
			return domain.User{}, ErrInvalidCredentials
		}
		return acct.user, nil
	}

	return domain.User{
		ID:      xid.New("user"),
		Name:    strings.SplitN(email, "@", 2)[0],
		Email:   email,
		IsAdmin: email == AdminEmail,
	}, nil
}

// Register creates a local account. Registered users are never admins.
func (a *AuthManager) Register(req domain.RegisterRequest) (domain.User, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return domain.User{}, fmt.Errorf("%w: name and email required", ErrInvalidCredentials)
	}
	if len(strings.TrimSpace(req.Password)) < 6 {
		return domain.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidCredentials)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[email]; exists {
		return domain.User{}, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:      xid.New("user"),
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(req.Phone),
		IsAdmin: false,
	}
	a.accounts[email] = account{passwordHash: string(hash), user: user}
	return user, nil
}

// Issue signs a session token for the user.
func (a *AuthManager) Issue(user domain.User) (token string, expiresAt time.Time, err error) {
	now := a.clock.Now()
	expiresAt = now.Add(a.tokenTTL)
	claims := sessionClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			Issuer:    "storefront",
		},
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		IsAdmin: user.IsAdmin,
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken verifies a session token and returns the user it carries.
func (a *AuthManager) ParseToken(tokenStr string) (domain.User, error) {
	claims := &sessionClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	}, jwtlib.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return domain.User{}, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.User{}, ErrInvalidToken
	}
	return domain.User{
		ID:      sub,
		Name:    claims.Name,
		Email:   claims.Email,
		Phone:   claims.Phone,
		IsAdmin: claims.IsAdmin,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
