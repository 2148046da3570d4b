package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	_ "github.com/lib/pq"

	"github.com/example/sabouha-storefront/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyResourceName guards against writing an unnamed document.
var ErrEmptyResourceName = errors.New("store: resource name is empty")

// PostgresGateway implements Gateway on a single document table: each
// named resource is one JSONB row, loaded and saved whole.
type PostgresGateway struct {
	db *sql.DB
}

// ConnectPostgres opens and pings a PostgreSQL connection.
func ConnectPostgres(connStr string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("store: open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping postgres: %w", err)
	}
	return db, nil
}

// NewPostgresGateway creates a gateway over an open connection.
func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

// EnsureSchema creates the document table if it does not exist.
func (g *PostgresGateway) EnsureSchema(ctx context.Context) error {
	_, err := g.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS storefront_documents (
			name       TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("store: ensure schema: %w", err)
	}
	return nil
}

// getDocument loads one named resource into out. ok=false means the
// resource has never been saved.
func (g *PostgresGateway) getDocument(ctx context.Context, name string, out any) (bool, error) {
	var data []byte
	err := g.db.QueryRowContext(ctx,
		`SELECT data FROM storefront_documents WHERE name = $1`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: get %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", name, err)
	}
	return true, nil
}

// saveDocument upserts one named resource as a whole record.
func (g *PostgresGateway) saveDocument(ctx context.Context, name string, v any) error {
	if name == "" {
		return ErrEmptyResourceName
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	_, err = g.db.ExecContext(ctx, `
		INSERT INTO storefront_documents (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		name, data)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}
	return nil
}

func (g *PostgresGateway) GetProducts(ctx context.Context) ([]domain.Product, bool, error) {
	var products []domain.Product
	ok, err := g.getDocument(ctx, ResourceProducts, &products)
	return products, ok, err
}

func (g *PostgresGateway) SaveProducts(ctx context.Context, products []domain.Product) error {
	return g.saveDocument(ctx, ResourceProducts, products)
}

func (g *PostgresGateway) GetHero(ctx context.Context) (domain.HeroSettings, bool, error) {
	var hero domain.HeroSettings
	ok, err := g.getDocument(ctx, ResourceHero, &hero)
	return hero, ok, err
}

func (g *PostgresGateway) SaveHero(ctx context.Context, hero domain.HeroSettings) error {
	return g.saveDocument(ctx, ResourceHero, hero)
}

func (g *PostgresGateway) GetAppearance(ctx context.Context) (domain.AppearanceSettings, bool, error) {
	var appearance domain.AppearanceSettings
	ok, err := g.getDocument(ctx, ResourceAppearance, &appearance)
	return appearance, ok, err
}

func (g *PostgresGateway) SaveAppearance(ctx context.Context, appearance domain.AppearanceSettings) error {
	return g.saveDocument(ctx, ResourceAppearance, appearance)
}

func (g *PostgresGateway) GetContact(ctx context.Context) (domain.ContactSettings, bool, error) {
	var contact domain.ContactSettings
	ok, err := g.getDocument(ctx, ResourceContact, &contact)
	return contact, ok, err
}

func (g *PostgresGateway) SaveContact(ctx context.Context, contact domain.ContactSettings) error {
	return g.saveDocument(ctx, ResourceContact, contact)
}
