package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AccessLevel is the system-wide permission tier of an account
type AccessLevel string

const (
	AccessAdmin    AccessLevel = "ADMINISTRADOR" // Full management, including catalogs and users
	AccessOperator AccessLevel = "OPERADOR"      // Manages personnel and organization records
	AccessReadOnly AccessLevel = "CONSULTA"      // Read-only dashboards and listings
)

// UserStatus represents the status of an account
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusLocked      UserStatus = "locked"
	UserStatusDeactivated UserStatus = "deactivated"
)

const bcryptCost = 12

// User is an account that can sign in. Most accounts belong to a
// service member and carry their profile reference; service accounts
// leave ProfileID nil.
type User struct {
	shared.AuditedAggregateRoot
	Username       string
	Email          string
	PasswordHash   string
	AccessLevel    AccessLevel
	ProfileID      *uuid.UUID
	Status         UserStatus
	LastAccessAt   *time.Time
	LastAccessIP   string
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates an active account with the given access level
func NewUser(username, password string, level AccessLevel, profileID *uuid.UUID) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if err := validateAccessLevel(level); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Username:             strings.ToLower(strings.TrimSpace(username)),
		PasswordHash:         passwordHash,
		AccessLevel:          level,
		ProfileID:            profileID,
		Status:               UserStatusActive,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// SetEmail sets the account email
func (u *User) SetEmail(email string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
		email = strings.ToLower(strings.TrimSpace(email))
	}

	u.Email = email
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangeAccessLevel moves the account to another permission tier
func (u *User) ChangeAccessLevel(level AccessLevel) error {
	if err := validateAccessLevel(level); err != nil {
		return err
	}

	u.AccessLevel = level
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// LinkProfile ties the account to a military profile
func (u *User) LinkProfile(profileID uuid.UUID) error {
	if profileID == uuid.Nil {
		return shared.NewDomainError("INVALID_PROFILE", "Profile reference is required")
	}

	u.ProfileID = &profileID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangePassword changes the password after checking the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password (admin reset, no old password check)
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserPasswordChangedEvent(u))

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Activate re-enables the account
func (u *User) Activate() error {
	if u.Status == UserStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "User is already active")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Deactivate disables the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "User is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserDeactivatedEvent(u))

	return nil
}

// Lock locks the account for the given duration
func (u *User) Lock(duration time.Duration) error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("USER_DEACTIVATED", "Cannot lock a deactivated user")
	}

	u.Status = UserStatusLocked
	if duration > 0 {
		lockedUntil := time.Now().Add(duration)
		u.LockedUntil = &lockedUntil
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Unlock clears a lock
func (u *User) Unlock() error {
	if u.Status != UserStatusLocked {
		return shared.NewDomainError("NOT_LOCKED", "User is not locked")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RecordAccess records a successful sign-in
func (u *User) RecordAccess(ip string) {
	now := time.Now()
	u.LastAccessAt = &now
	u.LastAccessIP = ip
	u.FailedAttempts = 0
	u.UpdatedAt = now
	u.IncrementVersion()
}

// RecordLoginFailure records a failed attempt. Returns true when the
// account got locked by this attempt.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		_ = u.Lock(lockDuration)
		return true
	}

	return false
}

// LastAccessDescription renders the last sign-in as relative Spanish
// text ("hoy", "hace 3 días"). Accounts that never signed in read as
// "nunca".
func (u *User) LastAccessDescription(now time.Time) string {
	if u.LastAccessAt == nil {
		return "nunca"
	}
	return shared.HumanizeSince(*u.LastAccessAt, now)
}

// IsLocked reports whether the account is locked right now
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}

	// An expired lock no longer blocks sign-in.
	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}

	return true
}

// CanLogin reports whether the account may sign in
func (u *User) CanLogin() bool {
	return u.Status != UserStatusDeactivated && !u.IsLocked()
}

// CanWrite reports whether the tier allows mutating records
func (u *User) CanWrite() bool {
	return u.AccessLevel == AccessAdmin || u.AccessLevel == AccessOperator
}

// CanManageUsers reports whether the tier allows account management
func (u *User) CanManageUsers() bool {
	return u.AccessLevel == AccessAdmin
}

// Validation functions

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be at least 3 characters")
	}
	if len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 100 characters")
	}

	usernameRegex := regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	if !usernameRegex.MatchString(username) {
		return shared.NewDomainError("INVALID_USERNAME", "Username can only contain letters, numbers, underscores, hyphens, and dots")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func validateAccessLevel(level AccessLevel) error {
	switch level {
	case AccessAdmin, AccessOperator, AccessReadOnly:
		return nil
	}
	return shared.NewDomainError("INVALID_ACCESS_LEVEL", "Unknown access level")
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// TableName returns the database table name
func (User) TableName() string {
	return "usuarios"
}
