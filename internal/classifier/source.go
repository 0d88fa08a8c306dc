package classifier

import (
	"context"
	"fmt"
	"os"

	"wineapi/internal/config"
	"wineapi/internal/storage"
)

// Source describes where a loaded artifact came from.
type Source struct {
	Origin  string // local path or bucket key
	Kind    string
	Version string
	Size    int64
	ETag    string // only set for bucket objects
}

// Load resolves the model artifact named by cfg. With a BucketKey set the
// artifact is read from store, otherwise from the local Path.
func Load(ctx context.Context, cfg config.ModelConfig, store storage.Storage) (Predictor, Source, error) {
	if cfg.BucketKey == "" {
		return loadLocal(cfg.Path)
	}
	if store == nil {
		return nil, Source{}, fmt.Errorf("model bucket key %q set without object storage", cfg.BucketKey)
	}
	rc, info, err := store.Get(ctx, cfg.BucketKey)
	if err != nil {
		return nil, Source{}, fmt.Errorf("fetch model artifact: %w", err)
	}
	defer rc.Close()

	a, err := DecodeArtifact(rc, cfg.BucketKey)
	if err != nil {
		return nil, Source{}, err
	}
	return build(a, Source{Origin: cfg.BucketKey, Size: info.Size, ETag: info.ETag})
}

func loadLocal(path string) (Predictor, Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Source{}, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	src := Source{Origin: path}
	if st, err := f.Stat(); err == nil {
		src.Size = st.Size()
	}
	a, err := DecodeArtifact(f, path)
	if err != nil {
		return nil, Source{}, err
	}
	return build(a, src)
}

func build(a Artifact, src Source) (Predictor, Source, error) {
	p, err := a.Predictor()
	if err != nil {
		return nil, Source{}, err
	}
	src.Kind = a.Kind
	src.Version = a.Version
	return p, src, nil
}
