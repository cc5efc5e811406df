package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/cryptox"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/dmitrijs2005/storekeeper/internal/server/auth"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refreshWindow = 5 * time.Hour

type userFixture struct {
	svc    *UserService
	rm     *fakeRepoManager
	clock  *timex.ManualClock
	issuer *auth.Issuer
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	issuer, err := auth.NewIssuer("test-secret", 15*time.Minute)
	require.NoError(t, err)

	rm := newFakeRepoManager(&recorder{})
	clock := timex.NewManualClock(t0)
	return &userFixture{
		svc:    NewUserService(nil, rm, issuer, refreshWindow, clock, logging.Nop()),
		rm:     rm,
		clock:  clock,
		issuer: issuer,
	}
}

// addUser stores a user directly, bypassing Register and its transaction.
func (f *userFixture) addUser(t *testing.T, name, password string, roles ...string) *models.User {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	u, err := f.rm.users.Create(context.Background(), &models.User{UserName: name, PasswordHash: hash})
	require.NoError(t, err)
	for _, r := range roles {
		require.NoError(t, f.rm.users.AddRole(context.Background(), u.ID, r))
	}
	return u
}

func TestLogin_IssuesTokens(t *testing.T) {
	f := newUserFixture(t)
	u := f.addUser(t, "alice", "correct horse", common.RoleAdmin)

	pair, err := f.svc.Login(context.Background(), "alice", "correct horse")
	require.NoError(t, err)

	assert.Len(t, pair.RefreshToken, 86, "64 random bytes in unpadded base64url")
	assert.Equal(t, t0.Add(refreshWindow), pair.RefreshTokenExpiry)

	stored := f.rm.users.byName["alice"]
	assert.Equal(t, pair.RefreshToken, stored.RefreshToken)
	assert.True(t, stored.RefreshTokenExpiry.Equal(pair.RefreshTokenExpiry))

	claims, err := f.issuer.ParseAccessToken(pair.AccessToken, t0)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, []string{common.RoleAdmin}, claims.Roles)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")

	_, errUnknown := f.svc.Login(context.Background(), "mallory", "whatever1")
	_, errWrong := f.svc.Login(context.Background(), "alice", "wrong password")

	assert.Same(t, common.ErrorUnauthorized, errUnknown)
	assert.Same(t, common.ErrorUnauthorized, errWrong)
	assert.Empty(t, f.rm.users.byName["alice"].RefreshToken)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	f := newUserFixture(t)
	f.rm.users.getErr = errors.New("db down")

	_, err := f.svc.Login(context.Background(), "alice", "correct horse")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin_StoreTokenFailure(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")
	f.rm.users.updateErr = errors.New("db down")

	_, err := f.svc.Login(context.Background(), "alice", "correct horse")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestSecondLoginInvalidatesFirstRefreshToken(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")
	ctx := context.Background()

	first, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)
	second, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = f.svc.Refresh(ctx, first.RefreshToken, first.RefreshTokenExpiry)
	assert.Same(t, common.ErrorUnauthorized, err)

	pair, err := f.svc.Refresh(ctx, second.RefreshToken, second.RefreshTokenExpiry)
	require.NoError(t, err)
	assert.Equal(t, second.RefreshToken, pair.RefreshToken)
}

func TestRefresh_ReusesRefreshToken(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse", common.RoleCustomer)
	ctx := context.Background()

	login, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	pair, err := f.svc.Refresh(ctx, login.RefreshToken, login.RefreshTokenExpiry)
	require.NoError(t, err)

	assert.Equal(t, login.RefreshToken, pair.RefreshToken)
	assert.True(t, login.RefreshTokenExpiry.Equal(pair.RefreshTokenExpiry))

	claims, err := f.issuer.ParseAccessToken(pair.AccessToken, f.clock.Now())
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now().Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, []string{common.RoleCustomer}, claims.Roles)
}

// A matching pair is honored past its expiry: only equality with the stored
// values is checked.
func TestRefresh_ExpiredButMatchingPairIsAccepted(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")
	ctx := context.Background()

	login, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	f.clock.Advance(refreshWindow + time.Hour)

	pair, err := f.svc.Refresh(ctx, login.RefreshToken, login.RefreshTokenExpiry)
	require.NoError(t, err)
	assert.Equal(t, login.RefreshToken, pair.RefreshToken)
}

func TestRefresh_Mismatches(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")
	ctx := context.Background()

	login, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		expiry time.Time
	}{
		{"wrong token", "not-the-token", login.RefreshTokenExpiry},
		{"wrong expiry", login.RefreshToken, login.RefreshTokenExpiry.Add(time.Second)},
		{"empty token", "", login.RefreshTokenExpiry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Refresh(ctx, tt.token, tt.expiry)
			assert.Same(t, common.ErrorUnauthorized, err)
		})
	}
}

func TestRefresh_EmptyTokenNeverMatchesFreshUser(t *testing.T) {
	f := newUserFixture(t)
	u := f.addUser(t, "bob", "correct horse")

	_, err := f.svc.Refresh(context.Background(), "", u.RefreshTokenExpiry)
	assert.Same(t, common.ErrorUnauthorized, err)
}

func TestRefresh_ExpiryInOtherZoneStillMatches(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "alice", "correct horse")
	ctx := context.Background()

	login, err := f.svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)

	riga := time.FixedZone("EET", 2*60*60)
	_, err = f.svc.Refresh(ctx, login.RefreshToken, login.RefreshTokenExpiry.In(riga))
	assert.NoError(t, err)
}

func TestRegister(t *testing.T) {
	f := newUserFixture(t)
	db, mock := newTxDB(t)
	f.svc.db = db
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectCommit()

	u, err := f.svc.Register(ctx, "carol", "long enough", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{common.RoleCustomer}, u.Roles)
	assert.Equal(t, []string{common.RoleCustomer}, f.rm.users.roles[u.ID])
	assert.NoError(t, cryptox.VerifyPassword("long enough", f.rm.users.byName["carol"].PasswordHash))

	pair, err := f.svc.Login(ctx, "carol", "long enough")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRegister_Duplicate(t *testing.T) {
	f := newUserFixture(t)
	f.addUser(t, "carol", "long enough")
	db, mock := newTxDB(t)
	f.svc.db = db

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := f.svc.Register(context.Background(), "carol", "long enough", nil)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.svc.Register(context.Background(), "ab", "long enough", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Register(context.Background(), "carol", "short", nil)
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = f.svc.Register(context.Background(), "carol", "long enough", []string{"Root"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestAssignRole(t *testing.T) {
	f := newUserFixture(t)
	u := f.addUser(t, "dave", "long enough", common.RoleCustomer)

	require.NoError(t, f.svc.AssignRole(context.Background(), "dave", common.RoleAdmin))
	assert.Equal(t, []string{common.RoleAdmin, common.RoleCustomer}, f.rm.users.roles[u.ID])

	assert.ErrorIs(t, f.svc.AssignRole(context.Background(), "nobody", common.RoleAdmin), common.ErrorNotFound)
	assert.ErrorIs(t, f.svc.AssignRole(context.Background(), "dave", "Root"), common.ErrorValidation)
}
