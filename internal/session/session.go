// Package session porte l'état d'authentification de la console : token,
// utilisateur courant, prédicats de rôle et politique 401 globale.
package session

import (
	"context"
	"sync"

	"github.com/Aboubacar04/biosen-console/internal/domain/entity"
	"github.com/Aboubacar04/biosen-console/internal/rest"
	"github.com/Aboubacar04/biosen-console/pkg/logger"
)

// Observer reçoit l'utilisateur courant à chaque login/logout. nil = session
// fermée. Alias pour que Subscribe reste assignable aux interfaces prenant la
// fonction nue.
type Observer = func(*entity.User)

// Session détenteur de session. Mono-écrivain (piloté par l'utilisateur),
// lecteurs multiples ; le mutex couvre les lectures concurrentes des
// contrôleurs d'écran.
type Session struct {
	auth  *rest.AuthService
	store Store
	log   *logger.Logger

	mu        sync.RWMutex
	token     string
	user      *entity.User
	observers map[int]Observer
	nextObs   int
}

// New construit la session et recharge l'état persisté s'il existe.
func New(auth *rest.AuthService, store Store, log *logger.Logger) *Session {
	s := &Session{
		auth:      auth,
		store:     store,
		log:       log,
		observers: map[int]Observer{},
	}
	if st, err := store.Load(); err == nil && st != nil {
		s.token = st.Token
		s.user = st.User
	}
	return s
}

// Login vérifie les identifiants, persiste token + utilisateur et notifie les
// observateurs. En cas d'échec l'état précédent reste intact.
func (s *Session) Login(ctx context.Context, email, password string) (*entity.User, error) {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = resp.Token
	user := resp.User
	s.user = &user
	if err := s.store.Save(State{Token: s.token, User: s.user}); err != nil {
		// La session reste utilisable en mémoire ; seul le rechargement au
		// prochain lancement est perdu.
		s.log.Warn().Err(err).Msg("persistance de la session échouée")
	}
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("connexion réussie")
	for _, o := range obs {
		o(&user)
	}
	return &user, nil
}

// Logout prévient le backend au mieux puis nettoie l'état local dans tous les
// cas, réseau coupé compris.
func (s *Session) Logout(ctx context.Context) {
	if s.IsLoggedIn() {
		if err := s.auth.Logout(ctx); err != nil {
			s.log.Warn().Err(err).Msg("logout backend échoué, session locale nettoyée quand même")
		}
	}
	s.Teardown()
}

// Teardown vide token et utilisateur, efface le stockage et notifie les
// observateurs. Branché comme hook 401 global du client REST ; un second
// appel sur une session déjà vide est un no-op.
func (s *Session) Teardown() {
	s.mu.Lock()
	if s.token == "" && s.user == nil {
		s.mu.Unlock()
		return
	}
	s.token = ""
	s.user = nil
	_ = s.store.Clear()
	obs := s.snapshotObservers()
	s.mu.Unlock()

	s.log.Info().Msg("session fermée")
	for _, o := range obs {
		o(nil)
	}
}

// Token renvoie le bearer token courant ; chaîne vide hors session. Signature
// compatible rest.TokenFunc.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser renvoie l'utilisateur courant, nil hors session.
func (s *Session) CurrentUser() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsLoggedIn indique si une session est ouverte.
func (s *Session) IsLoggedIn() bool { return s.Token() != "" }

// IsAdmin indique si l'utilisateur courant est admin.
func (s *Session) IsAdmin() bool { return s.CurrentUser().EstAdmin() }

// IsGerant indique si l'utilisateur courant est gérant.
func (s *Session) IsGerant() bool { return s.CurrentUser().EstGerant() }

// BoutiqueID renvoie la boutique de rattachement du compte, 0 si aucune.
func (s *Session) BoutiqueID() int {
	u := s.CurrentUser()
	if u == nil || u.BoutiqueID == nil {
		return 0
	}
	return *u.BoutiqueID
}

// Subscribe enregistre un observateur et renvoie sa fonction de désabonnement,
// à appeler au démontage de l'écran.
func (s *Session) Subscribe(o Observer) (annuler func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = o
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// snapshotObservers copie la liste sous verrou pour notifier hors verrou.
func (s *Session) snapshotObservers() []Observer {
	obs := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		obs = append(obs, o)
	}
	return obs
}
