package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/fostr-server/internal/logger"
	"github.com/dtroode/fostr-server/internal/model"
)

// Pictures turns uploads into stored, size-bounded profile pictures.
type Pictures struct {
	storage    model.Storage
	defaultRef string
	reserved   []string
	box        int
	logger     *logger.Logger
}

// NewPictures creates the picture service. defaultRef is always treated as
// reserved. box is the side of the square thumbnails are fitted in.
func NewPictures(storage model.Storage, defaultRef string, reserved []string, box int, logger *logger.Logger) *Pictures {
	all := []string{defaultRef}
	for _, r := range reserved {
		if r != "" && !slices.Contains(all, r) {
			all = append(all, r)
		}
	}
	return &Pictures{
		storage:    storage,
		defaultRef: defaultRef,
		reserved:   all,
		box:        box,
		logger:     logger,
	}
}

// Default returns the picture of users without an upload.
func (p *Pictures) Default() string {
	return p.defaultRef
}

// IsReserved reports whether ref is the default picture or a seed picture.
func (p *Pictures) IsReserved(ref string) bool {
	return slices.Contains(p.reserved, ref)
}

// Save stores a thumbnail of up under a random name keeping its extension.
func (p *Pictures) Save(ctx context.Context, up model.Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	name := uuid.NewString() + ext

	img, _, err := image.Decode(bytes.NewReader(up.Data))
	if err != nil {
		return "", &model.AssetError{Op: "decode", Ref: up.Filename, Err: err}
	}

	data, err := encodeImage(thumbnail(img, p.box), ext)
	if err != nil {
		return "", &model.AssetError{Op: "encode", Ref: name, Err: err}
	}

	if err := p.storage.Write(ctx, name, data); err != nil {
		p.logger.Error("Pictures service: failed to store picture",
			"ref", name,
			"error", err.Error())
		return "", &model.AssetError{Op: "write", Ref: name, Err: err}
	}

	p.logger.Debug("Pictures service: picture stored",
		"ref", name,
		"source", up.Filename,
		"bytes", len(data))

	return name, nil
}

// Release deletes a picture that is no longer referenced. Reserved pictures
// are kept. Failures are logged and never returned.
func (p *Pictures) Release(ctx context.Context, ref string) {
	if ref == "" || p.IsReserved(ref) {
		return
	}

	exists, err := p.storage.Exists(ctx, ref)
	if err != nil {
		p.logger.Error("Pictures service: failed to check picture",
			"ref", ref,
			"error", err.Error())
		return
	}
	if !exists {
		p.logger.Info("Pictures service: picture already absent",
			"ref", ref)
		return
	}

	if err := p.storage.Delete(ctx, ref); err != nil {
		p.logger.Error("Pictures service: failed to delete picture",
			"ref", ref,
			"error", err.Error())
		return
	}

	p.logger.Debug("Pictures service: picture released",
		"ref", ref)
}

// Read returns the stored bytes of ref.
func (p *Pictures) Read(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return nil, model.ErrNotFound
	}

	data, err := p.storage.Read(ctx, ref)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, &model.AssetError{Op: "read", Ref: ref, Err: err}
	}
	return data, nil
}

// EnsureReserved writes a placeholder for every reserved picture missing in
// storage.
func (p *Pictures) EnsureReserved(ctx context.Context) error {
	var img []byte
	for _, ref := range p.reserved {
		exists, err := p.storage.Exists(ctx, ref)
		if err != nil {
			return fmt.Errorf("failed to check reserved picture %q: %w", ref, err)
		}
		if exists {
			continue
		}

		if img == nil {
			if img, err = placeholder(p.box); err != nil {
				return err
			}
		}
		if err := p.storage.Write(ctx, ref, img); err != nil {
			return fmt.Errorf("failed to write reserved picture %q: %w", ref, err)
		}
		p.logger.Info("Pictures service: placeholder written for reserved picture",
			"ref", ref)
	}
	return nil
}
