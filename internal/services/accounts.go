package services

import (
	"strings"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
	log "github.com/sirupsen/logrus"
)

// RegisterResult is the outcome of a registration attempt.
type RegisterResult int

const (
	// RegisterOK means the account was created.
	RegisterOK RegisterResult = iota
	// RegisterInvalidInput means the email, password or personal info was
	// rejected.
	RegisterInvalidInput
	// RegisterDuplicateEmail means the normalized email is already taken.
	RegisterDuplicateEmail
)

// AccountService owns the account/client registry and the single session
// slot: at most one client is connected at any time.
type AccountService interface {
	// Register creates an account and its client. The email is validated
	// and normalized; a duplicate normalized email is rejected.
	Register(email, password string, info *models.PersonalInfo) RegisterResult
	// Login connects the client matching the credentials. On any failure
	// the session is left untouched.
	Login(email, password string) bool
	// Logout clears the session. It returns false when nobody was
	// connected.
	Logout() bool
	// CurrentSession returns the connected client, or nil.
	CurrentSession() *models.Client
	// ClientByEmail finds a client by normalized email, or nil.
	ClientByEmail(email string) *models.Client
	// Clients returns every registered client in registration order.
	Clients() []*models.Client
	// Reset drops all clients and clears the session.
	Reset()
}

type accountService struct {
	clients []*models.Client
	byEmail map[string]*models.Client
	session *models.Client
}

// NewAccountService creates an empty registry with no session.
func NewAccountService() AccountService {
	return &accountService{byEmail: make(map[string]*models.Client)}
}

func (s *accountService) Register(email, password string, info *models.PersonalInfo) RegisterResult {
	if !models.ValidEmail(email) {
		return RegisterInvalidInput
	}
	if strings.TrimSpace(password) == "" || info == nil {
		return RegisterInvalidInput
	}
	key := models.NormalizeEmail(email)
	if _, taken := s.byEmail[key]; taken {
		return RegisterDuplicateEmail
	}
	account, err := models.NewAccount(email, password, *info)
	if err != nil {
		return RegisterInvalidInput
	}
	client := models.NewClient(account)
	s.clients = append(s.clients, client)
	s.byEmail[key] = client
	log.WithField("email", key).Info("client registered")
	return RegisterOK
}

func (s *accountService) Login(email, password string) bool {
	if !models.ValidEmail(email) {
		return false
	}
	client := s.byEmail[models.NormalizeEmail(email)]
	if client == nil {
		return false
	}
	if !client.Account.CheckPassword(password) {
		return false
	}
	s.session = client
	log.WithField("email", client.Email()).Info("client connected")
	return true
}

func (s *accountService) Logout() bool {
	if s.session == nil {
		return false
	}
	log.WithField("email", s.session.Email()).Info("client disconnected")
	s.session = nil
	return true
}

func (s *accountService) CurrentSession() *models.Client {
	return s.session
}

func (s *accountService) ClientByEmail(email string) *models.Client {
	return s.byEmail[models.NormalizeEmail(email)]
}

func (s *accountService) Clients() []*models.Client {
	return append([]*models.Client(nil), s.clients...)
}

func (s *accountService) Reset() {
	s.clients = nil
	s.byEmail = make(map[string]*models.Client)
	s.session = nil
}
