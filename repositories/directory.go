//go:generate go run go.uber.org/mock/mockgen -source=directory.go -destination=../mocks/mock_user_directory.go -package=mocks
package repositories

import (
	"fmt"
	"mytwitter/domain"
	"mytwitter/errors"
	"strings"
	"sync"

	"github.com/samber/lo"
)

type IUserDirectory interface {
	Register(profile *domain.Profile) error
	Find(username string) (*domain.Profile, bool)
	Replace(profile *domain.Profile) error
	List() []*domain.Profile
}

// UserDirectory is the authoritative registry of profiles.
// Usernames are compared case-insensitively and entries are never removed.
// A linear scan is enough at this scale.
type UserDirectory struct {
	mu       sync.RWMutex
	profiles []*domain.Profile
}

func NewUserDirectory() *UserDirectory {
	return &UserDirectory{}
}

// Register appends the profile unless its username is already taken.
func (d *UserDirectory) Register(profile *domain.Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.indexOf(profile.Username()); ok {
		return fmt.Errorf("%w: %q", errors.ErrAlreadyRegistered, profile.Username())
	}
	d.profiles = append(d.profiles, profile)
	return nil
}

// Find returns the stored instance, false when nothing matches.
func (d *UserDirectory) Find(username string) (*domain.Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	idx, ok := d.indexOf(username)
	if !ok {
		return nil, false
	}
	return d.profiles[idx], true
}

// Replace overwrites the slot matching the profile's current username.
// A profile renamed in place is still found since the stored pointer carries
// the new name.
func (d *UserDirectory) Replace(profile *domain.Profile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx, ok := d.indexOf(profile.Username())
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrNotRegistered, profile.Username())
	}
	d.profiles[idx] = profile
	return nil
}

// List returns every profile in registration order, inactive ones included.
func (d *UserDirectory) List() []*domain.Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]*domain.Profile(nil), d.profiles...)
}

func (d *UserDirectory) indexOf(username string) (int, bool) {
	_, idx, ok := lo.FindIndexOf(d.profiles, func(p *domain.Profile) bool {
		return strings.EqualFold(p.Username(), username)
	})
	return idx, ok
}
