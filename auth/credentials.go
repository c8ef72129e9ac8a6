// Package auth holds the file-backed credential store. No SQL is involved:
// credentials live as bcrypt hashes in a JSON file and every password check
// goes through bcrypt's constant-time comparison.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCredentialsFile is the store location when none is configured.
const DefaultCredentialsFile = "credentials.json"

type userRecord struct {
	PasswordHash string `json:"password_hash"`
	DisplayName  string `json:"display_name"`
}

// CredentialStore manages login credentials in a JSON file. A missing file
// is seeded with the default admin account on first load.
type CredentialStore struct {
	path string

	mu sync.Mutex
}

// NewCredentialStore creates a store backed by the given file path.
func NewCredentialStore(path string) *CredentialStore {
	if path == "" {
		path = DefaultCredentialsFile
	}
	return &CredentialStore{path: path}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func verifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// load reads the credential file, seeding the default admin account when the
// file does not exist yet. Caller must hold mu.
func (s *CredentialStore) load() (map[string]*userRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		hash, err := hashPassword("admin123")
		if err != nil {
			return nil, err
		}
		creds := map[string]*userRecord{
			"admin": {PasswordHash: hash, DisplayName: "Administrator"},
		}
		if err := s.save(creds); err != nil {
			return nil, err
		}
		return creds, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}

	creds := make(map[string]*userRecord)
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}
	return creds, nil
}

// save writes the credential file. Caller must hold mu.
func (s *CredentialStore) save(creds map[string]*userRecord) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Authenticate checks a username/password pair. Unknown usernames still run
// a bcrypt comparison so response timing does not reveal valid usernames.
func (s *CredentialStore) Authenticate(username, password string) bool {
	if username == "" || password == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return false
	}

	user, ok := creds[username]
	if !ok {
		dummy, _ := hashPassword("dummy")
		verifyPassword(password, dummy)
		return false
	}
	return verifyPassword(password, user.PasswordHash)
}

// DisplayName returns the display name for a user, falling back to the
// username itself.
func (s *CredentialStore) DisplayName(username string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return username
	}
	if user, ok := creds[username]; ok && user.DisplayName != "" {
		return user.DisplayName
	}
	return username
}

// ChangePassword replaces a user's password after verifying the current one.
// The returned message is safe to show to the user.
func (s *CredentialStore) ChangePassword(username, currentPassword, newPassword string) (bool, string) {
	if currentPassword == "" || newPassword == "" {
		return false, "All fields are required."
	}
	if len(newPassword) < 6 {
		return false, "New password must be at least 6 characters."
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return false, "Could not read credential store."
	}

	user, ok := creds[username]
	if !ok {
		return false, "User not found."
	}
	if !verifyPassword(currentPassword, user.PasswordHash) {
		return false, "Current password is incorrect."
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return false, "Could not update password."
	}
	user.PasswordHash = hash
	if err := s.save(creds); err != nil {
		return false, "Could not update password."
	}
	return true, "Password changed successfully."
}

// ChangeUsername renames a user after verifying their password.
func (s *CredentialStore) ChangeUsername(currentUsername, newUsername, password string) (bool, string) {
	if newUsername == "" || password == "" {
		return false, "All fields are required."
	}
	if len(newUsername) < 3 {
		return false, "Username must be at least 3 characters."
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return false, "Could not read credential store."
	}

	user, ok := creds[currentUsername]
	if !ok {
		return false, "User not found."
	}
	if !verifyPassword(password, user.PasswordHash) {
		return false, "Password is incorrect."
	}
	if _, exists := creds[newUsername]; exists && newUsername != currentUsername {
		return false, "Username already exists."
	}

	delete(creds, currentUsername)
	creds[newUsername] = user
	if err := s.save(creds); err != nil {
		return false, "Could not update username."
	}
	return true, "Username changed successfully."
}

// SetPassword creates or overwrites a user entry without verification. Used
// by maintenance tooling only.
func (s *CredentialStore) SetPassword(username, password, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if displayName == "" {
		displayName = username
	}
	creds[username] = &userRecord{PasswordHash: hash, DisplayName: displayName}
	return s.save(creds)
}
