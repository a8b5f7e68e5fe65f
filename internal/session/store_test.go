package session_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/session"
)

func cheminTest(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "profonde", "session.json")
}

func TestFileStore_AllerRetour(t *testing.T) {
	chemin := cheminTest(t)
	store := session.NewFileStore(chemin)

	require.NoError(t, store.Save(session.State{
		Token: "jeton-de-test",
		User:  &entity.User{ID: 7, Nom: "Awa Ndiaye", Role: entity.RoleAdmin},
	}))

	st, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, "jeton-de-test", st.Token)
	assert.Equal(t, "Awa Ndiaye", st.User.Nom)
}

// Le fichier de session porte le token : il doit rester privé.
func TestFileStore_PermissionsRestreintes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permissions POSIX non vérifiables sous Windows")
	}
	chemin := cheminTest(t)
	store := session.NewFileStore(chemin)
	require.NoError(t, store.Save(session.State{Token: "x"}))

	info, err := os.Stat(chemin)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

// Un fichier absent n'est pas une erreur : premier lancement.
func TestFileStore_FichierAbsent(t *testing.T) {
	st, err := session.NewFileStore(cheminTest(t)).Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}

// Un fichier corrompu repart de zéro plutôt que de bloquer le login.
func TestFileStore_FichierCorrompu(t *testing.T) {
	chemin := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(chemin, []byte("{pas du json"), 0o600))

	st, err := session.NewFileStore(chemin).Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	chemin := cheminTest(t)
	store := session.NewFileStore(chemin)
	require.NoError(t, store.Save(session.State{Token: "x"}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "effacer une session absente n'est pas une erreur")

	st, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, st)
}
