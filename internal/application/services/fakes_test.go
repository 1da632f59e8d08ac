package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"demcare-service/internal/domain/entities"
)

type fakeTokenCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{entries: make(map[string]string)}
}

func (f *fakeTokenCache) SetToken(_ context.Context, token, userID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[token] = userID
	return nil
}

func (f *fakeTokenCache) GetToken(_ context.Context, token string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[token], nil
}

func (f *fakeTokenCache) DeleteToken(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, token)
	f.deleted = append(f.deleted, token)
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entities.User)}
}

func cloneUser(u *entities.User) *entities.User {
	clone := *u
	clone.Tokens = append([]string(nil), u.Tokens...)
	clone.EmergencyContacts = append([]entities.EmergencyContact(nil), u.EmergencyContacts...)
	clone.Todos = append([]entities.TodoItem(nil), u.Todos...)
	return &clone
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entity := user.GetUser()
	for _, existing := range f.users {
		if existing.Email == entity.Email {
			return nil, errors.New("duplicate email")
		}
	}
	f.users[entity.Id] = cloneUser(entity)
	return cloneUser(entity), nil
}

func (f *fakeUserRepo) FindById(_ context.Context, id uuid.UUID) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return cloneUser(user), nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	user.IsVerified = true
	return nil
}

func (f *fakeUserRepo) AppendToken(_ context.Context, id uuid.UUID, token string, limit int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	user.Tokens = append(user.Tokens, token)
	var evicted []string
	if limit > 0 && len(user.Tokens) > limit {
		evicted = append([]string(nil), user.Tokens[:len(user.Tokens)-limit]...)
		user.Tokens = user.Tokens[len(user.Tokens)-limit:]
	}
	return evicted, nil
}

func (f *fakeUserRepo) HasToken(_ context.Context, id uuid.UUID, token string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return false, nil
	}
	return user.HasToken(token), nil
}

func (f *fakeUserRepo) ReplaceEmergencyContacts(_ context.Context, id uuid.UUID, contacts []entities.EmergencyContact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	user.EmergencyContacts = append([]entities.EmergencyContact(nil), contacts...)
	return nil
}

type fakeOtpRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entities.OtpRecord
}

func newFakeOtpRepo() *fakeOtpRepo {
	return &fakeOtpRepo{records: make(map[uuid.UUID]*entities.OtpRecord)}
}

func (f *fakeOtpRepo) Create(_ context.Context, record *entities.OtpRecord) (*entities.OtpRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *record
	f.records[record.Id] = &clone
	result := clone
	return &result, nil
}

func (f *fakeOtpRepo) FindById(_ context.Context, id uuid.UUID) (*entities.OtpRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (f *fakeOtpRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return errors.New("otp record not found")
	}
	record.Active = false
	return nil
}

type fakeTodoRepo struct {
	mu      sync.Mutex
	byUser  map[uuid.UUID][]entities.TodoItem
	addErr  error
	addCall int
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{byUser: make(map[uuid.UUID][]entities.TodoItem)}
}

func (f *fakeTodoRepo) Add(_ context.Context, userID uuid.UUID, todo *entities.TodoItem) (*entities.TodoItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCall++
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.byUser[userID] = append(f.byUser[userID], *todo)
	clone := *todo
	return &clone, nil
}

func (f *fakeTodoRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entities.TodoItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.TodoItem(nil), f.byUser[userID]...), nil
}

func (f *fakeTodoRepo) SetDone(_ context.Context, userID, todoID uuid.UUID, done bool) (*entities.TodoItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todos := f.byUser[userID]
	for i := range todos {
		if todos[i].Id == todoID {
			todos[i].IsDone = done
			clone := todos[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, userID, todoID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todos := f.byUser[userID]
	for i := range todos {
		if todos[i].Id == todoID {
			f.byUser[userID] = append(todos[:i:i], todos[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTodoRepo) ResetAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cleared int64
	for _, todos := range f.byUser {
		for i := range todos {
			if todos[i].IsDone {
				todos[i].IsDone = false
				cleared++
			}
		}
	}
	return cleared, nil
}
