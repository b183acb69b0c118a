package projects

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
	"github.com/trekfolio/brochure-backend/internal/projects/migrate"
)

// Store is the session-scoped project cache plus the read/write
// orchestration both the form editor and the preview flow go through. One
// Store exists per signed-in user; it is built at sign-in, discarded at
// sign-out, and never shared across users. All cache mutation happens
// behind the Store's own methods, and only after the remote write has been
// confirmed, so a failed write leaves the cache untouched.
type Store struct {
	userID string
	repo   Repository

	mu       sync.RWMutex
	projects []domain.Project
	loadErr  error
}

func NewStore(repo Repository, userID string) *Store {
	return &Store{repo: repo, userID: userID}
}

// Load replaces the cache with the user's full project list. Records failing
// the validity guard are dropped silently; a corrupt document must never
// block the rest of the list. A remote failure degrades to an empty cache
// with the error kept for the UI to surface.
func (s *Store) Load(ctx context.Context) error {
	recs, err := s.repo.List(ctx, s.userID)
	if err != nil {
		s.mu.Lock()
		s.projects = nil
		s.loadErr = err
		s.mu.Unlock()
		return err
	}

	loaded := make([]domain.Project, 0, len(recs))
	for _, rec := range recs {
		if !domain.IsValidRecord(rec) {
			continue
		}
		p, err := rec.Project()
		if err != nil {
			log.Printf("[projects] skipping undecodable record: %v", err)
			continue
		}
		loaded = append(loaded, migrate.Normalize(p))
	}

	s.mu.Lock()
	s.projects = loaded
	s.loadErr = nil
	s.mu.Unlock()
	return nil
}

// LoadErr reports the error from the most recent Load, if it failed.
func (s *Store) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Projects returns a copy of the cached list, newest first.
func (s *Store) Projects() []domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Get is a synchronous cache lookup. A miss returns false and does not
// trigger a fetch.
func (s *Store) Get(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}

// Fetch is the cache-first read: a hit returns immediately, a miss goes to
// the repository. The fetched project is normalized and returned without
// being inserted into the list cache — the id may belong to a page the user
// never listed, and read-through keeps the cache an exact mirror of Load.
func (s *Store) Fetch(ctx context.Context, id string) (domain.Project, error) {
	if p, ok := s.Get(id); ok {
		return p, nil
	}

	rec, err := s.repo.Get(ctx, s.userID, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !domain.IsValidRecord(rec) {
		return domain.Project{}, fmt.Errorf("project %s: malformed record", id)
	}
	p, err := rec.Project()
	if err != nil {
		return domain.Project{}, err
	}
	return migrate.Normalize(p), nil
}

// Add creates the project remotely, then prepends it to the cache to keep
// the newest-first ordering.
func (s *Store) Add(ctx context.Context, data domain.ProjectCreate) (domain.Project, error) {
	p, err := s.repo.Create(ctx, s.userID, data)
	if err != nil {
		return domain.Project{}, err
	}
	p = migrate.Normalize(p)

	s.mu.Lock()
	s.projects = append([]domain.Project{p}, s.projects...)
	s.mu.Unlock()
	return p, nil
}

// Update writes the partial update remotely, then patches the matching
// cache entry. The cache is only touched after the remote call resolves, so
// no rollback is ever needed. id and createdAt never change.
func (s *Store) Update(ctx context.Context, id string, patch domain.ProjectUpdate) error {
	if err := s.repo.Update(ctx, s.userID, id, patch); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID != id {
			continue
		}
		patched, err := applyPatch(p, patch)
		if err != nil {
			// The remote write went through; a cache patch that cannot be
			// decoded just leaves the stale entry until the next Load.
			log.Printf("[projects] cache patch for %s failed: %v", id, err)
			return nil
		}
		s.projects[i] = patched
		return nil
	}
	return nil
}

// Remove deletes the project remotely and purges it from the cache.
// Deletion is terminal: there is no soft-delete or versioning.
func (s *Store) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, s.userID, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.projects[:0]
	for _, p := range s.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.projects = kept
	return nil
}

// CreateDefaultProject seeds the built-in brochure template, typically for
// a brand-new user with nothing to edit yet.
func (s *Store) CreateDefaultProject(ctx context.Context) (domain.Project, error) {
	return s.Add(ctx, DefaultProject())
}

// ResetToDefault creates a fresh default project.
func (s *Store) ResetToDefault(ctx context.Context) error {
	_, err := s.CreateDefaultProject(ctx)
	return err
}

// applyPatch overlays the patch's top-level fields on the project, matching
// the merge the document store performed. System fields stay immutable and
// updatedAt is refreshed to the write time.
func applyPatch(p domain.Project, patch domain.ProjectUpdate) (domain.Project, error) {
	rec, err := domain.RecordOf(p)
	if err != nil {
		return domain.Project{}, err
	}
	for k, v := range patch.Sanitized() {
		rec[k] = v
	}
	rec["id"] = p.ID
	rec["createdAt"] = p.CreatedAt
	rec["updatedAt"] = domain.NowISO()

	patched, err := rec.Project()
	if err != nil {
		return domain.Project{}, err
	}
	return migrate.Normalize(patched), nil
}

// IsNotFound reports whether err is the store's not-found signal.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
