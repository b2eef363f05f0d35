package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"bookstore-api/internal/domains/user"
)

// memoryStore is an in-memory user.CredentialStore.
type memoryStore struct {
	mu         sync.Mutex
	identities []*user.Identity
	roles      map[string]bool
	members    map[uuid.UUID][]string

	err         error
	createCalls int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{roles: map[string]bool{}, members: map[uuid.UUID][]string{}}
}

func (m *memoryStore) add(identity *user.Identity, roles ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}
	m.identities = append(m.identities, identity)
	m.members[identity.ID] = roles
}

func (m *memoryStore) find(match func(*user.Identity) bool) (*user.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, i := range m.identities {
		if match(i) {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryStore) FindByName(_ context.Context, name string) (*user.Identity, error) {
	return m.find(func(i *user.Identity) bool { return i.UserName == name })
}

func (m *memoryStore) FindByEmail(_ context.Context, email string) (*user.Identity, error) {
	return m.find(func(i *user.Identity) bool { return strings.EqualFold(i.Email, email) })
}

func (m *memoryStore) GetRoles(_ context.Context, identity *user.Identity) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	roles := append([]string(nil), m.members[identity.ID]...)
	sort.Strings(roles)
	return roles, nil
}

func (m *memoryStore) RoleExists(_ context.Context, name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roles[name], m.err
}

func (m *memoryStore) CreateRole(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.roles[name] {
		return user.ErrRoleExists
	}
	m.roles[name] = true
	return nil
}

func (m *memoryStore) CreateIdentity(ctx context.Context, identity *user.Identity, roles ...string) error {
	m.mu.Lock()
	if m.err != nil {
		m.mu.Unlock()
		return m.err
	}
	m.createCalls++
	for _, r := range roles {
		if !m.roles[r] {
			m.mu.Unlock()
			return user.ErrRoleNotFound
		}
	}
	for _, i := range m.identities {
		if i.UserName == identity.UserName || i.Email == identity.Email {
			m.mu.Unlock()
			return user.ErrIdentityExists
		}
	}
	m.mu.Unlock()

	m.add(identity, roles...)
	return nil
}

// plainHasher keeps tests fast; it is not a real hash.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain:" + password, nil }

func (plainHasher) Verify(hash, password string) bool { return hash == "plain:"+password }
