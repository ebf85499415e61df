package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"portfolio/api/internal/auth"
	"portfolio/api/internal/authpw"
	"portfolio/api/internal/config"
	"portfolio/api/internal/content"
	"portfolio/api/internal/email"
	"portfolio/api/internal/store"
	"portfolio/api/internal/util"
)

type Session struct {
	Token        string
	RefreshToken string
	UserID       string
	Email        string
	DisplayName  string
	Role         string
	JTI          string
	ExpiresAt    time.Time
}

func (s Session) IsAdmin() bool {
	return s.Role == "admin"
}

// SectionPayload is one resolved section as served to clients.
type SectionPayload struct {
	Section     string          `json:"section"`
	Content     json.RawMessage `json:"content"`
	FromDefault bool            `json:"fromDefault"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// ContactInput is one contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type dataStore interface {
	GetSection(ctx context.Context, sectionKey string) (store.SectionRow, error)
	UpsertSection(ctx context.Context, sectionKey string, content json.RawMessage) (time.Time, error)
	ListSections(ctx context.Context) ([]store.SectionRow, error)
	GetUserByID(ctx context.Context, userID string) (store.User, error)
	RevokeAccessToken(ctx context.Context, jti string, exp time.Time) error
	IsAccessTokenRevoked(ctx context.Context, jti string) (bool, error)
	Ping(ctx context.Context) error
}

// sessionStore holds refresh sessions. Redis when configured, the
// Postgres store otherwise.
type sessionStore interface {
	SaveRefreshSession(ctx context.Context, tokenHash string, user store.User, expiresAt time.Time) error
	LookupRefreshSession(ctx context.Context, tokenHash string) (store.User, error)
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
}

type mailer interface {
	IsConfigured() bool
	SendContactNotification(msg email.ContactMessage) error
	SendContactConfirmation(msg email.ContactMessage) error
	SendPasswordResetEmail(to, userName, resetURL string) error
}

type uploader interface {
	Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error)
}

type Service struct {
	cfg      config.Config
	store    dataStore
	sessions sessionStore
	resolver *content.Resolver
	authpw   *authpw.Service
	mail     mailer
	uploads  uploader
}

func New(cfg config.Config, dataStore *store.PostgresStore) *Service {
	registry := content.NewRegistry()
	return &Service{
		cfg:      cfg,
		store:    dataStore,
		sessions: dataStore,
		resolver: content.NewResolver(dataStore, registry),
		authpw:   authpw.NewService(dataStore),
	}
}

// SetSessionStore swaps refresh-session storage, e.g. for Redis.
func (s *Service) SetSessionStore(sessions sessionStore) {
	s.sessions = sessions
}

func (s *Service) SetMailer(mail mailer) {
	s.mail = mail
}

func (s *Service) SetUploader(uploads uploader) {
	s.uploads = uploads
}

func (s *Service) AuthPasswordService() *authpw.Service {
	return s.authpw
}

func (s *Service) SMTPConfigured() bool {
	return s.mail != nil && s.mail.IsConfigured()
}

// Bootstrap seeds the owner account on first start.
func (s *Service) Bootstrap(ctx context.Context) error {
	return s.authpw.EnsureOwner(ctx, authpw.OwnerSeed{
		Email:       s.cfg.OwnerEmail,
		Password:    s.cfg.OwnerPassword,
		DisplayName: s.cfg.OwnerName,
	})
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// --- Sessions ---

func (s *Service) CreateSession(ctx context.Context, userID string) (Session, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	tokenHash := auth.HashToken(refreshToken)
	user, err := s.sessions.LookupRefreshSession(ctx, tokenHash)
	if err != nil {
		return Session{}, err
	}
	if err := s.sessions.RevokeRefreshSession(ctx, tokenHash); err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

func (s *Service) issueSession(ctx context.Context, user store.User) (Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	jti := util.NewID("jti")

	token, err := auth.IssueToken([]byte(s.cfg.JWTSecret), auth.Claims{
		Sub:   user.ID,
		Email: user.Email,
		Role:  user.Role,
		JTI:   jti,
		Exp:   expiresAt.Unix(),
	})
	if err != nil {
		return Session{}, err
	}

	refresh := util.NewToken()
	refreshExpires := now.Add(s.cfg.RefreshTTL)
	if err := s.sessions.SaveRefreshSession(ctx, auth.HashToken(refresh), user, refreshExpires); err != nil {
		return Session{}, err
	}

	return Session{
		Token:        token,
		RefreshToken: refresh,
		UserID:       user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		Role:         user.Role,
		JTI:          jti,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		return Session{}, err
	}
	revoked, err := s.store.IsAccessTokenRevoked(ctx, claims.JTI)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, auth.ErrInvalidToken
	}

	user, err := s.store.GetUserByID(ctx, claims.Sub)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:       token,
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		JTI:         claims.JTI,
		ExpiresAt:   time.Unix(claims.Exp, 0),
	}, nil
}

func (s *Service) Logout(ctx context.Context, session Session, refreshToken string) error {
	if session.JTI != "" {
		_ = s.store.RevokeAccessToken(ctx, session.JTI, session.ExpiresAt)
	}
	if refreshToken != "" {
		_ = s.sessions.RevokeRefreshSession(ctx, auth.HashToken(refreshToken))
	}
	return nil
}

// --- Password reset ---

func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) (string, error) {
	token, user, err := s.authpw.RequestPasswordReset(ctx, emailAddr)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}
	if s.SMTPConfigured() {
		resetURL := strings.TrimSuffix(s.cfg.SiteURL, "/") + "/reset-password?token=" + token
		if err := s.mail.SendPasswordResetEmail(user.Email, user.DisplayName, resetURL); err != nil {
			log.Printf("password reset email to %s failed: %v", user.Email, err)
		}
	}
	return token, nil
}

// --- Content ---

func (s *Service) SectionKeys() []string {
	return s.resolver.Registry().Keys()
}

// GetContent resolves one section for the public site.
func (s *Service) GetContent(ctx context.Context, key string) (SectionPayload, error) {
	resolved, err := s.resolver.Resolve(ctx, key)
	if err != nil {
		return SectionPayload{}, s.mapContentErr(err)
	}
	return payloadFromResolved(resolved), nil
}

// ListContent resolves every registered section.
func (s *Service) ListContent(ctx context.Context) ([]SectionPayload, error) {
	keys := s.resolver.Registry().Keys()
	payloads := make([]SectionPayload, 0, len(keys))
	for _, key := range keys {
		resolved, err := s.resolver.Resolve(ctx, key)
		if err != nil {
			return nil, s.mapContentErr(err)
		}
		payloads = append(payloads, payloadFromResolved(resolved))
	}
	return payloads, nil
}

// GetAdminContent resolves one section for editing, upgrading legacy
// shapes to the current schema.
func (s *Service) GetAdminContent(ctx context.Context, key string) (SectionPayload, error) {
	resolved, err := s.resolver.ResolveForEdit(ctx, key)
	if err != nil {
		return SectionPayload{}, s.mapContentErr(err)
	}
	return payloadFromResolved(resolved), nil
}

// SaveContent validates and persists a full section document.
func (s *Service) SaveContent(ctx context.Context, key string, raw json.RawMessage) (SectionPayload, error) {
	spec, ok := s.resolver.Registry().Spec(key)
	if !ok {
		return SectionPayload{}, domainError(http.StatusNotFound, "UNKNOWN_SECTION", "Unknown section", map[string]any{"section": key})
	}

	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return SectionPayload{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Content must be a JSON object", nil)
	}
	if err := spec.Check(doc); err != nil {
		return SectionPayload{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), map[string]any{"section": key})
	}

	updatedAt, err := s.store.UpsertSection(ctx, key, raw)
	if err != nil {
		return SectionPayload{}, fmt.Errorf("save section %s: %w", key, err)
	}
	return SectionPayload{Section: key, Content: raw, UpdatedAt: &updatedAt}, nil
}

// --- List editing ---

// AddListItem appends an item to a section list and persists the result.
func (s *Service) AddListItem(ctx context.Context, key, field string, item map[string]any) (SectionPayload, string, error) {
	doc, err := s.editableDocument(ctx, key, field)
	if err != nil {
		return SectionPayload{}, "", err
	}
	updated, id := content.AddItem(doc, field, item)
	payload, err := s.saveDocument(ctx, key, updated)
	return payload, id, err
}

// UpdateListItem merges a patch into one list item by id.
func (s *Service) UpdateListItem(ctx context.Context, key, field, id string, patch map[string]any) (SectionPayload, error) {
	doc, err := s.editableDocument(ctx, key, field)
	if err != nil {
		return SectionPayload{}, err
	}
	if !listHasItem(doc, field, id) {
		return SectionPayload{}, domainError(http.StatusNotFound, "ITEM_NOT_FOUND", "List item not found", map[string]any{"id": id})
	}
	updated := content.UpdateItem(doc, field, id, patch)
	return s.saveDocument(ctx, key, updated)
}

// RemoveListItem deletes one list item by id.
func (s *Service) RemoveListItem(ctx context.Context, key, field, id string) (SectionPayload, error) {
	doc, err := s.editableDocument(ctx, key, field)
	if err != nil {
		return SectionPayload{}, err
	}
	if !listHasItem(doc, field, id) {
		return SectionPayload{}, domainError(http.StatusNotFound, "ITEM_NOT_FOUND", "List item not found", map[string]any{"id": id})
	}
	updated := content.RemoveItem(doc, field, id)
	return s.saveDocument(ctx, key, updated)
}

// ReorderList replaces a section list with a reordered copy. The new
// order must contain exactly the items already in the list.
func (s *Service) ReorderList(ctx context.Context, key, field string, items []any) (SectionPayload, error) {
	doc, err := s.editableDocument(ctx, key, field)
	if err != nil {
		return SectionPayload{}, err
	}
	if !sameItemIDs(doc, field, items) {
		return SectionPayload{}, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Reordered list must contain the same items", nil)
	}
	updated := content.Reorder(doc, field, items)
	return s.saveDocument(ctx, key, updated)
}

func (s *Service) editableDocument(ctx context.Context, key, field string) (content.Document, error) {
	spec, ok := s.resolver.Registry().Spec(key)
	if !ok {
		return nil, domainError(http.StatusNotFound, "UNKNOWN_SECTION", "Unknown section", map[string]any{"section": key})
	}
	if !spec.HasListField(field) {
		return nil, domainError(http.StatusUnprocessableEntity, "UNKNOWN_LIST_FIELD", "Section has no such list field", map[string]any{"section": key, "field": field})
	}
	resolved, err := s.resolver.ResolveForEdit(ctx, key)
	if err != nil {
		return nil, s.mapContentErr(err)
	}
	return resolved.Document, nil
}

func (s *Service) saveDocument(ctx context.Context, key string, doc content.Document) (SectionPayload, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return SectionPayload{}, err
	}
	updatedAt, err := s.store.UpsertSection(ctx, key, raw)
	if err != nil {
		return SectionPayload{}, fmt.Errorf("save section %s: %w", key, err)
	}
	return SectionPayload{Section: key, Content: raw, UpdatedAt: &updatedAt}, nil
}

func (s *Service) mapContentErr(err error) error {
	if errors.Is(err, content.ErrUnknownSection) {
		return domainError(http.StatusNotFound, "UNKNOWN_SECTION", "Unknown section", nil)
	}
	return err
}

func payloadFromResolved(resolved content.Resolved) SectionPayload {
	payload := SectionPayload{
		Section:     resolved.Key,
		Content:     resolved.Content,
		FromDefault: resolved.FromDefault,
	}
	if !resolved.UpdatedAt.IsZero() {
		updatedAt := resolved.UpdatedAt
		payload.UpdatedAt = &updatedAt
	}
	return payload
}

func listHasItem(doc content.Document, field, id string) bool {
	items, _ := doc[field].([]any)
	for _, entry := range items {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if itemID, _ := item["id"].(string); itemID == id {
			return true
		}
	}
	return false
}

func sameItemIDs(doc content.Document, field string, items []any) bool {
	current, _ := doc[field].([]any)
	if len(current) != len(items) {
		return false
	}
	ids := make(map[string]int, len(current))
	for _, entry := range current {
		if item, ok := entry.(map[string]any); ok {
			id, _ := item["id"].(string)
			ids[id]++
		}
	}
	for _, entry := range items {
		item, ok := entry.(map[string]any)
		if !ok {
			return false
		}
		id, _ := item["id"].(string)
		if ids[id] == 0 {
			return false
		}
		ids[id]--
	}
	return true
}

// --- Contact relay ---

// ValidateContact checks a submission and returns the user-facing
// message for the first failing rule.
func ValidateContact(input ContactInput) string {
	if input.Name == "" || input.Email == "" || input.Message == "" {
		return "Todos os campos são obrigatórios"
	}
	if utf8.RuneCountInString(input.Name) > 100 {
		return "Nome deve ter no máximo 100 caracteres"
	}
	if utf8.RuneCountInString(input.Email) > 255 {
		return "Email deve ter no máximo 255 caracteres"
	}
	if utf8.RuneCountInString(input.Message) > 1000 {
		return "Mensagem deve ter no máximo 1000 caracteres"
	}
	if !isValidEmail(input.Email) {
		return "Email inválido"
	}
	return ""
}

func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Reject display names and addresses without a domain dot.
	if addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return strings.Contains(value[at+1:], ".")
}

// RelayContact validates a submission and forwards it by email. The
// owner notification must succeed; the confirmation back to the sender
// is best effort.
func (s *Service) RelayContact(ctx context.Context, input ContactInput) error {
	if message := ValidateContact(input); message != "" {
		return domainError(http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
	}
	if !s.SMTPConfigured() {
		return domainError(http.StatusServiceUnavailable, "MAIL_UNAVAILABLE", "Envio de email não configurado", nil)
	}

	msg := email.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Message: strings.TrimSpace(input.Message),
	}
	if err := s.mail.SendContactNotification(msg); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	if err := s.mail.SendContactConfirmation(msg); err != nil {
		log.Printf("contact confirmation to %s failed: %v", msg.Email, err)
	}
	return nil
}

// --- Uploads ---

const maxUploadSize = 5 * 1024 * 1024

// UploadImage stores an image and returns its public URL.
func (s *Service) UploadImage(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.uploads == nil {
		return "", domainError(http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "Armazenamento de imagens não configurado", nil)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainError(http.StatusUnprocessableEntity, "INVALID_FILE_TYPE", "Apenas imagens são permitidas", nil)
	}
	if size > maxUploadSize {
		return "", domainError(http.StatusUnprocessableEntity, "FILE_TOO_LARGE", "A imagem deve ter no máximo 5MB", nil)
	}
	if folder == "" {
		folder = "uploads"
	}
	url, err := s.uploads.Upload(ctx, folder, filename, contentType, size, r)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}
