package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fiapp/internal/domain/repository"
	"github.com/jhoicas/fiapp/internal/infrastructure/tree"
)

var _ repository.TreeStore = (*TreeStore)(nil)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS nodos (
    coleccion       TEXT        NOT NULL,
    clave           TEXT        NOT NULL,
    datos           JSONB       NOT NULL,
    actualizado_en  TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (coleccion, clave)
)`

// TreeStore guarda el árbol en PostgreSQL: una fila por hijo de primer nivel
// (usuarios/x, locales/x, proveedores/x) con el subárbol completo en JSONB.
type TreeStore struct {
	pool *pgxpool.Pool
}

// NewTreeStore construye el adaptador con el pool.
func NewTreeStore(pool *pgxpool.Pool) *TreeStore {
	return &TreeStore{pool: pool}
}

// EnsureSchema crea la tabla nodos si no existe.
func (s *TreeStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

func (s *TreeStore) Get(ctx context.Context, path string) (any, error) {
	parts := tree.Split(path)
	switch len(parts) {
	case 0:
		return s.getAll(ctx)
	case 1:
		return s.getColeccion(ctx, parts[0])
	default:
		doc, err := getDoc(ctx, s.pool, parts[0], parts[1], false)
		if err != nil {
			return nil, err
		}
		return tree.GetIn(doc, parts[2:]), nil
	}
}

func (s *TreeStore) Set(ctx context.Context, path string, value any) error {
	norm, err := tree.Normalize(value)
	if err != nil {
		return err
	}
	return s.inTx(ctx, func(tx pgx.Tx) error {
		return setTx(ctx, tx, tree.Split(path), norm)
	})
}

func (s *TreeStore) Update(ctx context.Context, path string, values map[string]any) error {
	parts := tree.Split(path)
	return s.inTx(ctx, func(tx pgx.Tx) error {
		for k, v := range values {
			norm, err := tree.Normalize(v)
			if err != nil {
				return err
			}
			full := append(append([]string{}, parts...), tree.Split(k)...)
			if err := setTx(ctx, tx, full, norm); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *TreeStore) Delete(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

// inTx ejecuta fn dentro de una transacción y hace Commit o Rollback.
func (s *TreeStore) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// setTx escribe value en la ruta. Para rutas de dos o más segmentos bloquea la fila (FOR UPDATE).
func setTx(ctx context.Context, q Querier, parts []string, value any) error {
	switch len(parts) {
	case 0:
		if _, err := q.Exec(ctx, `DELETE FROM nodos`); err != nil {
			return fmt.Errorf("vaciar árbol: %w", err)
		}
		m, _ := value.(map[string]any)
		for coleccion, hijos := range m {
			if err := setTx(ctx, q, []string{coleccion}, hijos); err != nil {
				return err
			}
		}
		return nil
	case 1:
		if _, err := q.Exec(ctx, `DELETE FROM nodos WHERE coleccion = $1`, parts[0]); err != nil {
			return fmt.Errorf("vaciar %s: %w", parts[0], err)
		}
		m, _ := value.(map[string]any)
		for clave, doc := range m {
			if err := putDoc(ctx, q, parts[0], clave, doc); err != nil {
				return err
			}
		}
		return nil
	default:
		doc, err := getDoc(ctx, q, parts[0], parts[1], true)
		if err != nil {
			return err
		}
		return putDoc(ctx, q, parts[0], parts[1], tree.SetIn(doc, parts[2:], value))
	}
}

func getDoc(ctx context.Context, q Querier, coleccion, clave string, forUpdate bool) (any, error) {
	query := `SELECT datos FROM nodos WHERE coleccion = $1 AND clave = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var raw []byte
	err := q.QueryRow(ctx, query, coleccion, clave).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s/%s: %w", coleccion, clave, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar %s/%s: %w", coleccion, clave, err)
	}
	return doc, nil
}

// putDoc inserta o reemplaza la fila; un doc nil la elimina.
func putDoc(ctx context.Context, q Querier, coleccion, clave string, doc any) error {
	if doc == nil {
		if _, err := q.Exec(ctx, `DELETE FROM nodos WHERE coleccion = $1 AND clave = $2`, coleccion, clave); err != nil {
			return fmt.Errorf("delete %s/%s: %w", coleccion, clave, err)
		}
		return nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("codificar %s/%s: %w", coleccion, clave, err)
	}
	query := `
		INSERT INTO nodos (coleccion, clave, datos, actualizado_en)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (coleccion, clave) DO UPDATE SET datos = EXCLUDED.datos, actualizado_en = now()`
	if _, err := q.Exec(ctx, query, coleccion, clave, raw); err != nil {
		return fmt.Errorf("upsert %s/%s: %w", coleccion, clave, err)
	}
	return nil
}

func (s *TreeStore) getColeccion(ctx context.Context, coleccion string) (any, error) {
	rows, err := s.pool.Query(ctx, `SELECT clave, datos FROM nodos WHERE coleccion = $1`, coleccion)
	if err != nil {
		return nil, fmt.Errorf("listar %s: %w", coleccion, err)
	}
	defer rows.Close()

	out := map[string]any{}
	for rows.Next() {
		var clave string
		var raw []byte
		if err := rows.Scan(&clave, &raw); err != nil {
			return nil, fmt.Errorf("listar %s scan: %w", coleccion, err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decodificar %s/%s: %w", coleccion, clave, err)
		}
		out[clave] = doc
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

func (s *TreeStore) getAll(ctx context.Context) (any, error) {
	rows, err := s.pool.Query(ctx, `SELECT coleccion, clave, datos FROM nodos`)
	if err != nil {
		return nil, fmt.Errorf("listar árbol: %w", err)
	}
	defer rows.Close()

	var root any
	for rows.Next() {
		var coleccion, clave string
		var raw []byte
		if err := rows.Scan(&coleccion, &clave, &raw); err != nil {
			return nil, fmt.Errorf("listar árbol scan: %w", err)
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decodificar %s/%s: %w", coleccion, clave, err)
		}
		root = tree.SetIn(root, []string{coleccion, clave}, doc)
	}
	return root, rows.Err()
}
