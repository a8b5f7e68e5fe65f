package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
)

// State token + utilisateur persistés entre deux lancements de la console,
// l'équivalent du localStorage du front historique.
type State struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Store persistance de la session.
type Store interface {
	Load() (*State, error) // (nil, nil) quand aucune session n'existe
	Save(State) error
	Clear() error
}

// FileStore persiste la session dans un fichier JSON en 0600.
type FileStore struct {
	chemin string
}

// NewFileStore construit le store sur le chemin indiqué.
func NewFileStore(chemin string) *FileStore {
	return &FileStore{chemin: chemin}
}

// Load lit la session persistée. Un fichier absent n'est pas une erreur.
func (s *FileStore) Load() (*State, error) {
	raw, err := os.ReadFile(s.chemin)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: lire %s: %w", s.chemin, err)
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		// Fichier corrompu : on repart de zéro plutôt que de bloquer le login.
		return nil, nil
	}
	if st.Token == "" {
		return nil, nil
	}
	return &st, nil
}

// Save écrit la session sur disque.
func (s *FileStore) Save(st State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("session: sérialiser: %w", err)
	}
	if dir := filepath.Dir(s.chemin); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("session: créer %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.chemin, raw, 0o600); err != nil {
		return fmt.Errorf("session: écrire %s: %w", s.chemin, err)
	}
	return nil
}

// Clear supprime la session persistée. Idempotent.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.chemin); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session: supprimer %s: %w", s.chemin, err)
	}
	return nil
}

// MemoryStore store volatile pour les tests.
type MemoryStore struct {
	st *State
}

// NewMemoryStore construit un store vide.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*State, error) {
	if s.st == nil {
		return nil, nil
	}
	copie := *s.st
	return &copie, nil
}

func (s *MemoryStore) Save(st State) error {
	s.st = &st
	return nil
}

func (s *MemoryStore) Clear() error {
	s.st = nil
	return nil
}
