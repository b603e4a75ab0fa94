package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ogusta/ripple/internal/domain"
	"github.com/ogusta/ripple/internal/storage"
	"github.com/ogusta/ripple/internal/store"
)

func seedUsers(t *testing.T, st *storage.Memory, current *domain.User, roster ...domain.User) *store.UserStore {
	t.Helper()
	require.NoError(t, st.Save(storage.KeyUsers, roster))
	if current != nil {
		require.NoError(t, st.Save(storage.KeyCurrentUser, current))
	}
	return store.NewUserStore(st)
}

func rosterUser(id, username string) domain.User {
	return domain.User{
		ID:        id,
		Username:  username,
		Followers: []string{},
		Following: []string{},
	}
}

func TestSaveProfileCreatesUser(t *testing.T) {
	users := store.NewUserStore(storage.NewMemory())

	u, err := users.SaveProfile(store.ProfileInput{Username: "alice", Bio: "hi"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice", u.Username)
	require.False(t, u.IsVerified)
	require.False(t, u.IsAdmin)
	require.Contains(t, u.ProfileImage, "dicebear.com")

	cu, ok := users.CurrentUser()
	require.True(t, ok)
	require.Equal(t, u.ID, cu.ID)
	require.Len(t, users.Users(), 1)
}

func TestSaveProfileReservedUsername(t *testing.T) {
	users := store.NewUserStore(storage.NewMemory())

	u, err := users.SaveProfile(store.ProfileInput{Username: "ogusta"})
	require.NoError(t, err)
	require.True(t, u.IsVerified)
	require.True(t, u.IsAdmin)
}

func TestSaveProfileReservedUsernameIsCaseInsensitive(t *testing.T) {
	users := store.NewUserStore(storage.NewMemory())

	u, err := users.SaveProfile(store.ProfileInput{Username: "OGusta"})
	require.NoError(t, err)
	require.True(t, u.IsAdmin)
}

func TestSaveProfileRequiresUsername(t *testing.T) {
	users := store.NewUserStore(storage.NewMemory())

	_, err := users.SaveProfile(store.ProfileInput{Username: "   "})
	require.ErrorIs(t, err, store.ErrUsernameRequired)
	require.Empty(t, users.Users())
}

func TestSaveProfileRejectsTakenUsername(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	users := seedUsers(t, st, &alice, alice, rosterUser("u2", "bob"))

	_, err := users.SaveProfile(store.ProfileInput{Username: "bob"})
	require.ErrorIs(t, err, store.ErrUsernameTaken)

	// Uniqueness is case-sensitive; "Bob" is a different username.
	u, err := users.SaveProfile(store.ProfileInput{Username: "Bob"})
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
}

func TestSaveProfileUpdatesInPlace(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	alice.Followers = []string{"u2"}
	users := seedUsers(t, st, &alice, alice)

	u, err := users.SaveProfile(store.ProfileInput{Username: "alice2", Bio: "new bio"})
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
	require.Equal(t, "new bio", u.Bio)
	require.Equal(t, []string{"u2"}, u.Followers)
	require.Len(t, users.Users(), 1)
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	users := seedUsers(t, st, &alice, alice, rosterUser("u2", "bob"))

	require.NoError(t, users.Follow("u2"))

	bob, ok := users.UserByID("u2")
	require.True(t, ok)
	require.Equal(t, []string{"u1"}, bob.Followers)

	cu, _ := users.CurrentUser()
	require.Equal(t, []string{"u2"}, cu.Following)

	require.NoError(t, users.Unfollow("u2"))

	bob, _ = users.UserByID("u2")
	require.Empty(t, bob.Followers)
	cu, _ = users.CurrentUser()
	require.Empty(t, cu.Following)
}

func TestFollowTwiceIsNoOp(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	users := seedUsers(t, st, &alice, alice, rosterUser("u2", "bob"))

	require.NoError(t, users.Follow("u2"))
	require.NoError(t, users.Follow("u2"))

	bob, _ := users.UserByID("u2")
	require.Equal(t, []string{"u1"}, bob.Followers)
}

func TestFollowGuards(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	users := seedUsers(t, st, &alice, alice)

	require.ErrorIs(t, users.Follow("u1"), store.ErrSelfFollow)
	require.ErrorIs(t, users.Follow("ghost"), store.ErrUserNotFound)

	loggedOut := store.NewUserStore(storage.NewMemory())
	require.ErrorIs(t, loggedOut.Follow("u1"), store.ErrNotLoggedIn)
}

func TestSearchMatchesCaseInsensitiveSubstring(t *testing.T) {
	st := storage.NewMemory()
	users := seedUsers(t, st, nil,
		rosterUser("u1", "Alice"),
		rosterUser("u2", "bob"),
		rosterUser("u3", "malice"),
	)

	found := users.Search("ali")
	require.Len(t, found, 2)

	require.Len(t, users.Search(""), 3)
	require.Empty(t, users.Search("zzz"))
}

func TestStateSurvivesReload(t *testing.T) {
	st := storage.NewMemory()
	alice := rosterUser("u1", "alice")
	users := seedUsers(t, st, &alice, alice, rosterUser("u2", "bob"))

	require.NoError(t, users.Follow("u2"))

	reloaded := store.NewUserStore(st)
	bob, ok := reloaded.UserByID("u2")
	require.True(t, ok)
	require.Equal(t, []string{"u1"}, bob.Followers)

	cu, ok := reloaded.CurrentUser()
	require.True(t, ok)
	require.Equal(t, []string{"u2"}, cu.Following)
}

func TestMalformedStateStartsEmpty(t *testing.T) {
	st := storage.NewMemory()
	st.SetRaw(storage.KeyUsers, []byte("{definitely not json"))
	st.SetRaw(storage.KeyCurrentUser, []byte("[]"))

	users := store.NewUserStore(st)
	require.Empty(t, users.Users())
	_, ok := users.CurrentUser()
	require.False(t, ok)
}
