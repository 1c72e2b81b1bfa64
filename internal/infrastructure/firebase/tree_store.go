package firebase

import (
	"context"
	"fmt"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"github.com/jhoicas/fiapp/internal/domain/repository"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
	"github.com/jhoicas/fiapp/pkg/config"
)

var _ repository.TreeStore = (*TreeStore)(nil)

// TreeStore adapta la Realtime Database de Firebase al puerto TreeStore.
type TreeStore struct {
	client *db.Client
}

// NewTreeStore inicializa la app de Firebase con las credenciales configuradas.
// Sin FIREBASE_CREDENTIALS_PATH se usan las Application Default Credentials.
func NewTreeStore(ctx context.Context, cfg config.StoreConfig) (*TreeStore, error) {
	var opts []option.ClientOption
	if cfg.FirebaseCredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsPath))
	}
	app, err := fb.NewApp(ctx, &fb.Config{DatabaseURL: cfg.FirebaseDBURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase: inicializar app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase: cliente de base de datos: %w", err)
	}
	return &TreeStore{client: client}, nil
}

func (s *TreeStore) ref(path string) *db.Ref {
	return s.client.NewRef("/" + tree.Join(path))
}

func (s *TreeStore) Get(ctx context.Context, path string) (any, error) {
	var v any
	if err := s.ref(path).Get(ctx, &v); err != nil {
		return nil, fmt.Errorf("firebase: get %s: %w", path, err)
	}
	return v, nil
}

func (s *TreeStore) Set(ctx context.Context, path string, value any) error {
	if err := s.ref(path).Set(ctx, value); err != nil {
		return fmt.Errorf("firebase: set %s: %w", path, err)
	}
	return nil
}

func (s *TreeStore) Update(ctx context.Context, path string, values map[string]any) error {
	if len(values) == 0 {
		return nil
	}
	if err := s.ref(path).Update(ctx, values); err != nil {
		return fmt.Errorf("firebase: update %s: %w", path, err)
	}
	return nil
}

func (s *TreeStore) Delete(ctx context.Context, path string) error {
	if err := s.ref(path).Delete(ctx); err != nil {
		return fmt.Errorf("firebase: delete %s: %w", path, err)
	}
	return nil
}
