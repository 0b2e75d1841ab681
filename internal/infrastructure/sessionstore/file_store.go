package sessionstore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/jhoicas/Inventario-dashboard/internal/application/session"
)

const nonceSize = 24

var validID = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// FileStore guarda cada sesión como un archivo JSON; la credencial bearer va sellada con secretbox.
type FileStore struct {
	dir string
	key [32]byte
}

// record forma en disco de la sesión.
type record struct {
	Session     *session.Session `json:"session"`
	SealedToken string           `json:"sealedToken"`
}

// NewFileStore crea el directorio si no existe. key puede ser 64 caracteres hex (32 bytes)
// o cualquier frase; en ese caso se deriva con SHA-256.
func NewFileStore(dir, key string) (*FileStore, error) {
	if key == "" {
		return nil, fmt.Errorf("sessionstore: clave vacía")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("sessionstore: crear directorio: %w", err)
	}
	fs := &FileStore{dir: dir}
	if raw, err := hex.DecodeString(key); err == nil && len(raw) == 32 {
		copy(fs.key[:], raw)
	} else {
		fs.key = sha256.Sum256([]byte(key))
	}
	return fs, nil
}

var _ session.Store = (*FileStore)(nil)

func (s *FileStore) path(id string) (string, error) {
	if !validID.MatchString(id) {
		return "", session.ErrNotFound
	}
	return filepath.Join(s.dir, id+".json"), nil
}

// Load lee y abre la sesión. Un sello que no verifica se trata como sesión inexistente.
func (s *FileStore) Load(_ context.Context, id string) (*session.Session, error) {
	p, err := s.path(id)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, session.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sessionstore: leer: %w", err)
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil || rec.Session == nil {
		return nil, fmt.Errorf("sessionstore: archivo corrupto %s", id)
	}
	token, err := s.open(rec.SealedToken)
	if err != nil {
		return nil, session.ErrNotFound
	}
	rec.Session.Token = token
	return rec.Session, nil
}

// Save escribe la sesión de forma atómica (archivo temporal + rename).
func (s *FileStore) Save(_ context.Context, sess *session.Session) error {
	p, err := s.path(sess.ID)
	if err != nil {
		return err
	}
	sealed, err := s.seal(sess.Token)
	if err != nil {
		return err
	}
	b, err := json.Marshal(record{Session: sess, SealedToken: sealed})
	if err != nil {
		return fmt.Errorf("sessionstore: serializar: %w", err)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("sessionstore: escribir: %w", err)
	}
	return os.Rename(tmp, p)
}

// Delete borra la sesión; no existir no es error.
func (s *FileStore) Delete(_ context.Context, id string) error {
	p, err := s.path(id)
	if err != nil {
		return nil
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("sessionstore: borrar: %w", err)
	}
	return nil
}

func (s *FileStore) seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("sessionstore: nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return hex.EncodeToString(out), nil
}

func (s *FileStore) open(sealed string) (string, error) {
	raw, err := hex.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize {
		return "", errors.New("sello inválido")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", errors.New("sello inválido")
	}
	return string(plain), nil
}
