package storage

// Keys for the persisted collections. One entry per logical collection,
// JSON-encoded.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyPosts       = "posts"
	KeyMessages    = "messages"
)

// Store persists JSON-serializable state under string keys. A missing or
// malformed entry reads as "no data" (ok == false, nil error); errors are
// reserved for real storage failures. Writes are fire-and-forget from the
// stores' point of view: nothing is retried and a failed write loses the
// mutation.
type Store interface {
	Load(key string, out any) (ok bool, err error)
	Save(key string, value any) error
}
