package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	RosterPathKey    = "roster.path"
	rosterConfigDir  = ".scouts"
	rosterConfigFile = "roster.toml"
)

// Repository loads the roster from a TOML or YAML file chosen by extension.
type Repository struct {
	rosterPath string
}

var _ ports.RosterRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(RosterPathKey, filepath.Join(homeDir, rosterConfigDir, rosterConfigFile))

	rosterPath := cfg.GetString(RosterPathKey)
	if rosterPath == "" {
		return nil, errors.New("roster path is empty")
	}
	rosterPath, err = normalizeRosterPath(rosterPath)
	if err != nil {
		return nil, err
	}

	return &Repository{rosterPath: rosterPath}, nil
}

func (r *Repository) Path() string {
	return r.rosterPath
}

func (r *Repository) Load(ctx context.Context) (domain.Roster, error) {
	if err := ctx.Err(); err != nil {
		return domain.Roster{}, err
	}

	file, err := r.readSchema()
	if err != nil {
		return domain.Roster{}, err
	}

	roster := fromSchema(file)
	if err := roster.Validate(); err != nil {
		return domain.Roster{}, fmt.Errorf("invalid roster %s: %w", r.rosterPath, err)
	}

	return roster, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.rosterPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, fmt.Errorf("%w: %s", domain.ErrRosterNotFound, r.rosterPath)
		}
		return fileSchema{}, fmt.Errorf("read roster file: %w", err)
	}

	var file fileSchema
	switch strings.ToLower(filepath.Ext(r.rosterPath)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fileSchema{}, fmt.Errorf("decode roster file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &file); err != nil {
			return fileSchema{}, fmt.Errorf("decode roster file: %w", err)
		}
	}

	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeRosterPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve roster path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
