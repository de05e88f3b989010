package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"rusty/internal/apperrors"
	"rusty/internal/cli"
	"rusty/internal/models"
	"rusty/internal/repositories"
	"rusty/internal/services"
	"rusty/internal/testutil"
	"rusty/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserManager is a mock implementation of cli.UserManager
type MockUserManager struct {
	mock.Mock
}

func (m *MockUserManager) CreateUser(ctx context.Context, username, password string, roleCodes []string) (*models.User, []models.Role, error) {
	args := m.Called(username, password, roleCodes)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.User), args.Get(1).([]models.Role), args.Error(2)
}

func (m *MockUserManager) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserManager) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(id)
	return args.Error(0)
}

type fakeConsumer struct {
	events []models.Event
}

func (f *fakeConsumer) ConsumeEvents(ctx context.Context, handler func(models.Event) error) error {
	for _, e := range f.events {
		if err := handler(e); err != nil {
			return err
		}
	}
	return nil
}

func run(t *testing.T, deps cli.Deps, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCommand(deps, &out)
	root.SetArgs(args)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func usersDeps(m cli.UserManager) cli.Deps {
	return cli.Deps{Users: func() (cli.UserManager, error) { return m, nil }}
}

func TestCreateUserCommand(t *testing.T) {
	m := new(MockUserManager)
	created := &models.User{ID: 1, Username: "ferris", CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	roles := []models.Role{{ID: 1, Code: "admin"}, {ID: 2, Code: "editor"}}
	m.On("CreateUser", "ferris", "hunter2", []string{"admin", "editor", "viewer"}).Return(created, roles, nil).Once()

	out, err := run(t, usersDeps(m), "users", "create", "ferris", "hunter2", "admin,editor", "viewer")
	require.NoError(t, err)
	assert.Contains(t, out, "User created: id=1 username=ferris created_at=2024-01-02T03:04:05Z")
	assert.Contains(t, out, "Roles assigned: [admin,editor]")
	m.AssertExpectations(t)
}

func TestCreateUserCommand_Errors(t *testing.T) {
	m := new(MockUserManager)

	_, err := run(t, usersDeps(m), "users", "create", "ferris", "hunter2")
	assert.Error(t, err)

	conflict := apperrors.Errorf(apperrors.Conflict, "create user", "username %q already taken", "ferris")
	m.On("CreateUser", "ferris", "hunter2", []string{"admin"}).Return(nil, nil, conflict).Once()
	_, err = run(t, usersDeps(m), "users", "create", "ferris", "hunter2", "admin")
	assert.True(t, apperrors.Is(err, apperrors.Conflict))

	broken := cli.Deps{Users: func() (cli.UserManager, error) { return nil, errors.New("cannot connect") }}
	_, err = run(t, broken, "users", "list")
	assert.EqualError(t, err, "cannot connect")
}

func TestListUsersCommand(t *testing.T) {
	m := new(MockUserManager)
	m.On("ListUsers").Return([]models.User{
		{ID: 1, Username: "alice", Roles: []models.Role{{Code: "admin"}}},
		{ID: 2, Username: "bob"},
	}, nil).Once()

	out, err := run(t, usersDeps(m), "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "id=1 username=alice")
	assert.Contains(t, out, "roles=[admin]")
	assert.Contains(t, out, "id=2 username=bob")
	assert.Contains(t, out, "roles=[]")
}

func TestDeleteUserCommand(t *testing.T) {
	m := new(MockUserManager)
	m.On("DeleteUser", 4).Return(nil).Once()

	out, err := run(t, usersDeps(m), "users", "delete", "4")
	require.NoError(t, err)
	assert.Equal(t, "User 4 deleted\n", out)

	_, err = run(t, usersDeps(m), "users", "delete", "four")
	assert.True(t, apperrors.Is(err, apperrors.Validation))
	m.AssertExpectations(t)
}

func TestTailEventsCommand(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	deps := cli.Deps{Events: func() (cli.EventConsumer, error) {
		return &fakeConsumer{events: []models.Event{
			{ID: "e1", Type: models.EventCrateCreated, EntityID: 3, OccurredAt: at},
		}}, nil
	}}

	out, err := run(t, deps, "events", "tail")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:00:00Z crate.created id=3 event=e1\n", out)
}

func TestUserCommandsAgainstDatabase(t *testing.T) {
	db := testutil.NewDB(t)
	service := services.NewUserService(repositories.NewGORMUserRepository(db), repositories.NewGORMRoleRepository(db)).
		WithHasher(func(plain string) (string, error) {
			return password.HashWithParams(plain, password.Params{Memory: 1024, Iterations: 1, Threads: 1, SaltLength: 16, KeyLength: 32})
		})
	deps := usersDeps(service)

	out, err := run(t, deps, "users", "create", "ferris", "hunter2", "admin,viewer")
	require.NoError(t, err)
	assert.Contains(t, out, "Roles assigned: [admin,viewer]")

	var stored models.User
	require.NoError(t, db.First(&stored, "username = ?", "ferris").Error)
	assert.NotEqual(t, "hunter2", stored.Password)
	ok, err := password.Verify("hunter2", stored.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = run(t, deps, "users", "create", "ferris", "again", "admin")
	assert.True(t, apperrors.Is(err, apperrors.Conflict))

	_, err = run(t, deps, "users", "create", "corro", "pw", "wizard")
	assert.True(t, apperrors.Is(err, apperrors.Validation))

	out, err = run(t, deps, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "username=ferris")
	assert.NotContains(t, out, "corro")

	_, err = run(t, deps, "users", "delete", "1")
	require.NoError(t, err)
	_, err = run(t, deps, "users", "delete", "1")
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

type closedPipe struct{}

func (closedPipe) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestTailEventsCommand_StopsWhenOutputFails(t *testing.T) {
	consumer := &fakeConsumer{events: []models.Event{
		{ID: "e1", Type: models.EventCrateCreated, EntityID: 3},
		{ID: "e2", Type: models.EventCrateDeleted, EntityID: 3},
	}}
	deps := cli.Deps{Events: func() (cli.EventConsumer, error) { return consumer, nil }}

	root := cli.NewRootCommand(deps, closedPipe{})
	root.SetArgs([]string{"events", "tail"})
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	assert.EqualError(t, err, "broken pipe")
}
