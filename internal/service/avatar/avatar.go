// Package avatar handles user avatar images: the deterministic default
// derived from the user's email at registration, and placement of uploaded
// replacement files.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// URLFromEmail returns the Gravatar URL for the given email address. The
// derivation follows the Gravatar spec: md5 of the trimmed, lowercased
// address. Protocol-relative, as the upstream service emits it.
func URLFromEmail(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return "//www.gravatar.com/avatar/" + hex.EncodeToString(sum[:])
}

// Store moves uploaded avatar files into their permanent directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatars dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes the uploaded file under a name combining the owning user's ID
// and the original filename, and returns the relative path persisted on the
// user record. The user-ID prefix keeps uploads from different users apart;
// a second upload of the same filename by the same user overwrites the
// first, matching the service's historical behavior.
func (s *Store) Save(userID bson.ObjectID, filename string, src io.Reader) (string, error) {
	// Strip any client-supplied directory components.
	name := fmt.Sprintf("%s_%s", userID.Hex(), filepath.Base(filename))
	target := filepath.Join(s.dir, name)

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return filepath.Join("avatars", name), nil
}
