package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/storefront/internal/auth/domain"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepository 内存用户仓储
type fakeUserRepository struct {
	users  map[string]*userdomain.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*userdomain.User)}
}

func (f *fakeUserRepository) Save(ctx context.Context, user *userdomain.User) error {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uint) (*userdomain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepository) UpdateAddress(ctx context.Context, id uint, address *userdomain.Address) error {
	u, _ := f.GetByID(ctx, id)
	if u != nil {
		u.Address = address
	}
	return nil
}

func (f *fakeUserRepository) UpdatePaymentMethod(ctx context.Context, id uint, method userdomain.PaymentMethod) error {
	u, _ := f.GetByID(ctx, id)
	if u != nil {
		u.PaymentMethod = method
	}
	return nil
}

// fakeSessionRepository 内存会话仓储
type fakeSessionRepository struct {
	sessions map[string]*domain.StoreSession
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*domain.StoreSession)}
}

func (f *fakeSessionRepository) Save(ctx context.Context, s *domain.StoreSession) error {
	f.sessions[s.Token] = s
	return nil
}

func (f *fakeSessionRepository) Get(ctx context.Context, token string) (*domain.StoreSession, error) {
	return f.sessions[token], nil
}

func (f *fakeSessionRepository) Delete(ctx context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func TestRegister_HashesPassword(t *testing.T) {
	users := newFakeUserRepository()
	svc := NewAuthCommandService(users, newFakeSessionRepository())

	id, err := svc.Register(context.Background(), RegisterCommand{
		Name: "Jane Doe", Email: "jane@example.com", Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotZero(t, id)

	saved := users.users["jane@example.com"]
	require.NotNil(t, saved)
	assert.NotEqual(t, "s3cret-pass", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("s3cret-pass")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepository()
	svc := NewAuthCommandService(users, newFakeSessionRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterCommand{Name: "Jane", Email: "jane@example.com", Password: "pass1234"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterCommand{Name: "Impostor", Email: "jane@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_Success_CreatesSession(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	svc := NewAuthCommandService(users, sessions)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterCommand{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	token, expiresAt, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	session := sessions.sessions[token]
	require.NotNil(t, session)
	assert.Equal(t, "jane@example.com", session.Email)
	assert.False(t, session.IsExpired())
}

func TestLogin_WrongPassword(t *testing.T) {
	users := newFakeUserRepository()
	svc := NewAuthCommandService(users, newFakeSessionRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterCommand{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthCommandService(newFakeUserRepository(), newFakeSessionRepository())

	_, _, err := svc.Login(context.Background(), LoginCommand{Email: "nobody@example.com", Password: "pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout_RemovesSession(t *testing.T) {
	users := newFakeUserRepository()
	sessions := newFakeSessionRepository()
	svc := NewAuthCommandService(users, sessions)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterCommand{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, LoginCommand{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	assert.Nil(t, sessions.sessions[token])
}
