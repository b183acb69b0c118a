package projects

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/trekfolio/brochure-backend/internal/projects/domain"
)

// Repository is the persistence surface the store orchestrates. List and Get
// return wire Records (timestamps already translated to RFC 3339 strings);
// the store turns them into Projects.
type Repository interface {
	List(ctx context.Context, userID string) ([]domain.Record, error)
	Get(ctx context.Context, userID, id string) (domain.Record, error)
	Create(ctx context.Context, userID string, data domain.ProjectCreate) (domain.Project, error)
	Update(ctx context.Context, userID, id string, patch domain.ProjectUpdate) error
	Delete(ctx context.Context, userID, id string) error
}

// Repo is the Firestore-backed Repository. It is the only component that
// talks to the document store; projects live in the per-user subcollection
// users/{uid}/projects, the same layout the web editor always used.
type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) col(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("projects")
}

// List returns the user's project records, newest first.
func (r *Repo) List(ctx context.Context, userID string) ([]domain.Record, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	iter := r.col(userID).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	out := make([]domain.Record, 0, 16)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		out = append(out, recordFromDoc(doc))
	}
	return out, nil
}

// Get fetches a single project record, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, id string) (domain.Record, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}

	doc, err := r.col(userID).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w", id, err)
	}
	return recordFromDoc(doc), nil
}

// Create writes a new project with server-assigned timestamps. The returned
// Project carries a client-synthesized createdAt so callers can render
// immediately; the authoritative server value shows up on the next full
// list load.
func (r *Repo) Create(ctx context.Context, userID string, data domain.ProjectCreate) (domain.Project, error) {
	if userID == "" {
		return domain.Project{}, domain.ErrUnauthenticated
	}

	write, err := writeMap(data)
	if err != nil {
		return domain.Project{}, err
	}
	write["createdAt"] = firestore.ServerTimestamp
	write["updatedAt"] = firestore.ServerTimestamp

	ref, _, err := r.col(userID).Add(ctx, write)
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	p := data.Project()
	p.ID = ref.ID
	p.CreatedAt = domain.NowISO()
	return p, nil
}

// Update merges the patch into the document. id and createdAt are immutable
// and stripped from the payload; updatedAt is stamped server-side.
func (r *Repo) Update(ctx context.Context, userID, id string, patch domain.ProjectUpdate) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	write := map[string]any(patch.Sanitized())
	write["updatedAt"] = firestore.ServerTimestamp

	if _, err := r.col(userID).Doc(id).Set(ctx, write, firestore.MergeAll); err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}
	return nil
}

// Delete removes the document. Deleting a nonexistent id is a no-op success.
func (r *Repo) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}

	if _, err := r.col(userID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	return nil
}

// recordFromDoc builds the wire Record: document data plus the injected id,
// with native timestamps converted to RFC 3339 strings.
func recordFromDoc(doc *firestore.DocumentSnapshot) domain.Record {
	m := doc.Data()
	if m == nil {
		m = map[string]any{}
	}
	m["id"] = doc.Ref.ID
	m["createdAt"] = isoValue(m["createdAt"])
	m["updatedAt"] = isoValue(m["updatedAt"])
	return m
}

// isoValue converts a Firestore timestamp to the persisted string format.
// Records written by very old clients already hold strings; those pass
// through.
func isoValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return domain.FormatTime(t)
	}
	return v
}

// writeMap flattens the create payload into the map Firestore stores. Going
// through JSON keeps the document field names identical to what the web
// editor writes.
func writeMap(data domain.ProjectCreate) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode project: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return m, nil
}
