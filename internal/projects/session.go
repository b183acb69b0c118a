package projects

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trekfolio/brochure-backend/internal/autosave"
	"github.com/trekfolio/brochure-backend/internal/drafts"
	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

const flushTimeout = 10 * time.Second

// Session is one signed-in user's working state: their Store plus the
// per-project draft debouncers. It is built on the first authenticated
// request and torn down on sign-out or after going idle, which stops every
// pending debounced save.
type Session struct {
	UserID string
	Store  *Store

	drafts *drafts.Repo
	delay  time.Duration

	mu       sync.Mutex
	savers   map[string]*autosave.Saver[domain.ProjectUpdate]
	lastSeen time.Time
}

// SaveDraft records an edit against a project: the draft is written to the
// draft store immediately (crash recovery) and the project's debouncer is
// re-armed, so rapid edits collapse into one document write after the idle
// window.
func (s *Session) SaveDraft(ctx context.Context, projectID string, patch domain.ProjectUpdate) error {
	if s.drafts != nil {
		if err := s.drafts.Save(ctx, s.UserID, projectID, patch); err != nil {
			// The debounced flush still carries the data; losing the
			// recovery copy is not fatal.
			log.Printf("[session] draft store write failed for %s/%s: %v", s.UserID, projectID, err)
		}
	}

	s.saver(projectID).Set(patch)
	return nil
}

// Draft returns the pending draft for a project, or domain.ErrNotFound.
func (s *Session) Draft(ctx context.Context, projectID string) (domain.ProjectUpdate, error) {
	if s.drafts == nil {
		return nil, domain.ErrNotFound
	}
	return s.drafts.Load(ctx, s.UserID, projectID)
}

// DiscardDraft drops any pending draft and cancels the scheduled save.
func (s *Session) DiscardDraft(ctx context.Context, projectID string) error {
	s.mu.Lock()
	if saver, ok := s.savers[projectID]; ok {
		saver.Stop()
		delete(s.savers, projectID)
	}
	s.mu.Unlock()

	if s.drafts == nil {
		return nil
	}
	return s.drafts.Clear(ctx, s.UserID, projectID)
}

// PendingDraftIDs lists the project IDs with an unflushed draft.
func (s *Session) PendingDraftIDs(ctx context.Context) ([]string, error) {
	if s.drafts == nil {
		return nil, nil
	}
	return s.drafts.PendingIDs(ctx, s.UserID)
}

// DraftSaver exposes the debouncer for a project, mainly so handlers can
// report the isSaving / lastSaved state.
func (s *Session) DraftSaver(projectID string) *autosave.Saver[domain.ProjectUpdate] {
	return s.saver(projectID)
}

func (s *Session) saver(projectID string) *autosave.Saver[domain.ProjectUpdate] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saver, ok := s.savers[projectID]; ok {
		return saver
	}

	saver := autosave.New(func(patch domain.ProjectUpdate) error {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()

		if err := s.Store.Update(ctx, projectID, patch); err != nil {
			return err
		}
		if s.drafts != nil {
			if err := s.drafts.Clear(ctx, s.UserID, projectID); err != nil {
				log.Printf("[session] draft clear failed for %s/%s: %v", s.UserID, projectID, err)
			}
		}
		return nil
	}, autosave.Options{
		Delay: s.delay,
		OnError: func(err error) {
			// The draft stays in the draft store; the next edit re-arms the
			// saver and retries.
			log.Printf("[session] draft flush failed for %s/%s: %v", s.UserID, projectID, err)
		},
	})
	s.savers[projectID] = saver
	return saver
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, saver := range s.savers {
		saver.Stop()
		delete(s.savers, id)
	}
}

// ManagerOptions tune the session registry.
type ManagerOptions struct {
	// AutosaveDelay is the debounce window for draft flushes.
	AutosaveDelay time.Duration
	// IdleTTL is how long an untouched session survives before the janitor
	// drops it. Zero disables sweeping.
	IdleTTL time.Duration
}

// Manager owns the per-user Sessions. There is no module-level singleton:
// whoever needs project state holds a Manager handle and asks for the
// session explicitly.
type Manager struct {
	repo   Repository
	drafts *drafts.Repo
	opts   ManagerOptions

	mu       sync.Mutex
	sessions map[string]*Session
	cron     *cron.Cron
}

func NewManager(repo Repository, draftRepo *drafts.Repo, opts ManagerOptions) *Manager {
	if opts.AutosaveDelay <= 0 {
		opts.AutosaveDelay = autosave.DefaultDelay
	}
	return &Manager{
		repo:     repo,
		drafts:   draftRepo,
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Acquire returns the user's session, building and loading it on first use.
// A failed initial load still yields a usable (empty) session; the load
// error is surfaced through Store.LoadErr.
func (m *Manager) Acquire(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if !ok {
		sess = &Session{
			UserID: userID,
			Store:  NewStore(m.repo, userID),
			drafts: m.drafts,
			delay:  m.opts.AutosaveDelay,
			savers: make(map[string]*autosave.Saver[domain.ProjectUpdate]),
		}
		m.sessions[userID] = sess
	}
	m.mu.Unlock()

	if !ok {
		if err := sess.Store.Load(ctx); err != nil {
			log.Printf("[session] initial load for %s failed: %v", userID, err)
		}
	}

	sess.touch()
	return sess, nil
}

// Drop tears down the user's session: every pending debounced save is
// cancelled and the cache is discarded outright. The next sign-in rebuilds
// from scratch, so nothing leaks across users or sessions.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	sess, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()

	if ok {
		sess.close()
	}
}

// StartJanitor begins the periodic sweep of idle sessions.
func (m *Manager) StartJanitor() {
	if m.opts.IdleTTL <= 0 {
		return
	}

	c := cron.New()
	if _, err := c.AddFunc("@every 1m", m.sweep); err != nil {
		log.Printf("Failed to create session janitor: %v", err)
		return
	}

	log.Printf("Session janitor started (idle TTL %s)", m.opts.IdleTTL)
	c.Start()

	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()
}

// Close stops the janitor and drops every live session.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.cron != nil {
		m.cron.Stop()
		m.cron = nil
	}
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.opts.IdleTTL)

	m.mu.Lock()
	var expired []*Session
	for uid, sess := range m.sessions {
		if sess.idleSince().Before(cutoff) {
			expired = append(expired, sess)
			delete(m.sessions, uid)
		}
	}
	m.mu.Unlock()

	for _, sess := range expired {
		log.Printf("[session] dropping idle session for %s", sess.UserID)
		sess.close()
	}
}
